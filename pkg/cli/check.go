package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration and reach the document store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			rt, err := startup(ctx, cmd, flags)
			if err != nil {
				return err
			}
			defer rt.close(ctx)

			target := "memory"
			if rt.client != nil {
				target = rt.client.Endpoint()
			}
			fmt.Fprintf(rt.out, "ok: %s %s.%s (min_level %s, buffered %t)\n",
				target, rt.cfg.Mongo.Database, rt.cfg.Mongo.Collection,
				rt.sink.Minimum(), rt.sink.Buffered())
			return nil
		},
	}
}

package cli

import (
	"fmt"

	"github.com/DeBrosOfficial/mongolog/pkg/facade"
	"github.com/DeBrosOfficial/mongolog/pkg/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newDemoCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "List databases, install the sink and log a few sample lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, flags)
		},
	}
}

func runDemo(cmd *cobra.Command, flags *globalFlags) error {
	ctx := cmd.Context()
	rt, err := startup(ctx, cmd, flags)
	if err != nil {
		return err
	}
	defer rt.close(ctx)

	names, err := rt.databaseNames(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(rt.out, "Databases:")
	for _, name := range names {
		fmt.Fprintf(rt.out, "- %s\n", name)
	}

	if _, err := facade.Install(rt.sink, rt.sink.Minimum(), facade.WithStdLog()); err != nil {
		rt.logger.ComponentError(logging.ComponentFacade, "Failed to install logging backend", zap.Error(err))
		return err
	}

	log := zap.S()
	log.Info("Info Log")
	log.Debug("Debug Log")
	log.Warnf("Warning %d", 2)

	facade.Flush()
	return nil
}

package cli

import (
	"strings"

	"github.com/DeBrosOfficial/mongolog/pkg/logging"
	"github.com/DeBrosOfficial/mongolog/pkg/record"
	"github.com/DeBrosOfficial/mongolog/pkg/sink"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newLogCmd(flags *globalFlags) *cobra.Command {
	var level, source string
	cmd := &cobra.Command{
		Use:   "log <message...>",
		Short: "Emit one log record",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sev, err := record.ParseSeverity(level)
			if err != nil {
				return err
			}
			return runLog(cmd, flags, sev, source, strings.Join(args, " "))
		},
	}
	cmd.Flags().StringVar(&level, "level", "info", "Severity of the record")
	cmd.Flags().StringVar(&source, "source", "", "Source recorded as target (default: sink.default_source)")
	return cmd
}

func runLog(cmd *cobra.Command, flags *globalFlags, sev record.Severity, source, message string) error {
	ctx := cmd.Context()
	rt, err := startup(ctx, cmd, flags)
	if err != nil {
		return err
	}
	defer rt.close(ctx)

	if !rt.sink.Accepts(sev) {
		rt.logger.ComponentInfo(logging.ComponentCLI, "Record filtered by minimum severity",
			zap.String("level", sev.String()),
			zap.String("min_level", rt.sink.Minimum().String()),
		)
		return nil
	}

	logger := zap.New(sink.NewCore(rt.sink, nil))
	if source != "" {
		logger = logger.Named(source)
	}
	logger.Log(sev.ZapLevel(), message)
	return logger.Sync()
}

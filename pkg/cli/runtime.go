package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/DeBrosOfficial/mongolog/pkg/config"
	apperrors "github.com/DeBrosOfficial/mongolog/pkg/errors"
	"github.com/DeBrosOfficial/mongolog/pkg/logging"
	"github.com/DeBrosOfficial/mongolog/pkg/sink"
	"github.com/DeBrosOfficial/mongolog/pkg/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// runtime is everything a command needs once startup has succeeded.
type runtime struct {
	cfg    *config.Config
	logger *logging.ColoredLogger
	client *store.Client // nil in dry-run mode
	memory *store.Memory // non-nil in dry-run mode
	sink   *sink.Sink
	out    io.Writer
}

// loadConfig applies defaults, file, dotenv, environment and flags in that
// order, then validates the result.
func loadConfig(cmd *cobra.Command, flags *globalFlags) (*config.Config, error) {
	path := flags.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(config.LoadOptions{Path: path, EnvFile: flags.envFile})
	if err != nil {
		return nil, err
	}

	f := cmd.Flags()
	if f.Changed("min-level") {
		cfg.Sink.MinLevel = flags.minLevel
	}
	if f.Changed("buffered") {
		cfg.Sink.Buffered = flags.buffered
	}
	if f.Changed("dry-run") {
		cfg.DryRun = flags.dryRun
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, apperrors.NewConfigError("config", fmt.Sprintf("%d problem(s):\n  - %s", len(errs), strings.Join(msgs, "\n  - ")))
	}
	return cfg, nil
}

// newDiagnostics builds the stderr logger used for mongolog's own messages.
func newDiagnostics(cmd *cobra.Command, cfg *config.Config) (*logging.ColoredLogger, error) {
	return logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Colors: cfg.Logging.Colors,
		Output: cmd.ErrOrStderr(),
	})
}

// startup connects to the store and builds the sink. Every failure here is a
// startup error and ends the process with a non-zero status.
func startup(ctx context.Context, cmd *cobra.Command, flags *globalFlags) (*runtime, error) {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return nil, err
	}
	logger, err := newDiagnostics(cmd, cfg)
	if err != nil {
		return nil, apperrors.NewConfigError("logging", err.Error())
	}

	rt := &runtime{cfg: cfg, logger: logger, out: cmd.OutOrStdout()}

	var target sink.Target
	if cfg.DryRun {
		rt.memory = store.NewMemory()
		target = rt.memory
		logger.ComponentInfo(logging.ComponentCLI, "Dry run: records are kept in memory")
	} else {
		client, err := store.Connect(ctx, cfg.ConnectOptions(), logger)
		if err != nil {
			if apperrors.IsUnavailable(err) {
				logger.ComponentError(logging.ComponentCLI, "Document store unreachable", zap.Error(err))
			}
			return nil, err
		}
		rt.client = client
		target = client.Collection(cfg.Mongo.Database, cfg.Mongo.Collection)
	}

	sinkCfg, err := cfg.SinkOptions()
	if err != nil {
		rt.close(ctx)
		return nil, apperrors.NewConfigError("sink.min_level", err.Error())
	}
	sinkCfg.Console = zapcore.Lock(zapcore.AddSync(rt.out))
	rt.sink, err = sink.New(target, sinkCfg, logger)
	if err != nil {
		rt.close(ctx)
		return nil, err
	}
	logger.ComponentDebug(logging.ComponentCLI, "Sink ready",
		zap.String("min_level", sinkCfg.Minimum.String()),
		zap.Bool("buffered", sinkCfg.Buffered),
		zap.String("namespace", cfg.Mongo.Database+"."+cfg.Mongo.Collection),
	)
	return rt, nil
}

// databaseNames lists databases, or the configured one in dry-run mode.
func (rt *runtime) databaseNames(ctx context.Context) ([]string, error) {
	if rt.client == nil {
		return []string{rt.cfg.Mongo.Database}, nil
	}
	return rt.client.DatabaseNames(ctx)
}

// close flushes the sink and releases the connection.
func (rt *runtime) close(ctx context.Context) {
	if rt.sink != nil {
		rt.sink.Flush()
		st := rt.sink.Stats()
		rt.logger.ComponentDebug(logging.ComponentCLI, "Sink stats",
			zap.Uint64("accepted", st.Accepted),
			zap.Uint64("persisted", st.Persisted),
			zap.Uint64("failed", st.Failed),
			zap.Uint64("flushes", st.Flushes),
		)
	}
	if rt.client != nil {
		if err := rt.client.Disconnect(ctx); err != nil {
			rt.logger.ComponentWarn(logging.ComponentCLI, "Disconnect failed", zap.Error(err))
		}
	}
	_ = rt.logger.Sync()
}

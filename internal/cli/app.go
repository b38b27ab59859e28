package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jmgilman/localfs/fs/local"
	"github.com/jmgilman/localfs/internal/config"
)

// app holds the state shared by every subcommand once flags are parsed.
type app struct {
	fs     *local.LocalFS
	logger *zap.Logger
	output string
}

func (a *app) setup(cmd *cobra.Command) error {
	f := cmd.Flags()

	a.output, _ = f.GetString("output")
	switch a.output {
	case formatText, formatJSON, formatYAML:
	default:
		return usageErrorf("invalid output format %q (want text, json or yaml)", a.output)
	}

	envFile, _ := f.GetString("env-file")
	if err := config.LoadEnvFile(envFile); err != nil {
		return err
	}

	cfgPath, _ := f.GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return err
	}
	if f.Changed("mmap") {
		v, _ := f.GetBool("mmap")
		cfg.UseMmap = &v
	}
	if f.Changed("log-level") {
		cfg.LogLevel, _ = f.GetString("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	verbose, _ := f.GetBool("verbose")
	logger, err := newLogger(cmd.ErrOrStderr(), cfg, verbose)
	if err != nil {
		return err
	}
	a.logger = logger
	local.SetLogger(logger)

	fsys, err := local.NewWithOptions(cfg.Options())
	if err != nil {
		return err
	}
	a.fs = fsys

	a.logger.Debug("filesystem ready",
		zap.Bool("use_mmap", fsys.Options().UseMmap),
		zap.String("config", cfgPath),
	)
	return nil
}

func (a *app) close() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// newLogger builds a development logger at debug level when verbose is set,
// and a JSON production logger at the configured level otherwise.
func newLogger(w io.Writer, cfg *config.Config, verbose bool) (*zap.Logger, error) {
	if verbose {
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.AddSync(w),
			zapcore.DebugLevel,
		)
		return zap.New(core, zap.Development(), zap.AddCaller()), nil
	}

	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		lvl,
	)
	return zap.New(core), nil
}

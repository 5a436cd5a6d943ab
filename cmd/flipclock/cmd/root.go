// Package cmd implements the flipclock CLI commands.
//
// The root command loads flipclock.yaml and configures logging before
// dispatching to its subcommands (render, serve, version).
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-drift/flipclock/cmd/flipclock/internal/config"
	"github.com/go-drift/flipclock/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
	logFormat  string
	verbose    bool
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	flags := &globalFlags{}
	root := &cobra.Command{
		Use:   "flipclock",
		Short: "Flipclock - a flip-card clock face, rendered in Go",
		Long: `Flipclock draws an hour, minute and second flip-card clock face.

Settings are read from flipclock.yaml in the working directory, or from
the file named by --config.

Use "flipclock <command> --help" for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := setupLogging(cmd.ErrOrStderr(), flags)
			if err != nil {
				return err
			}
			errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: flags.verbose})
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "path to flipclock.yaml (default: ./"+config.FileName+" if present)")
	pf.StringVar(&flags.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.StringVar(&flags.logFormat, "log-format", "text", "log format: text, json")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "include stack traces in panic logs")

	root.AddCommand(
		newRenderCommand(flags),
		newServeCommand(flags),
		newVersionCommand(),
	)
	return root
}

func setupLogging(w io.Writer, flags *globalFlags) (*slog.Logger, error) {
	var level slog.Level
	switch strings.ToLower(flags.logLevel) {
	case "error":
		level = slog.LevelError
	case "warn", "warning":
		level = slog.LevelWarn
	case "info", "":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		return nil, fmt.Errorf("unknown log level %q", flags.logLevel)
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch strings.ToLower(flags.logFormat) {
	case "text", "":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("unknown log format %q", flags.logFormat)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger, nil
}

// loadConfig reads the file named by --config, or flipclock.yaml from the
// working directory when present.
func loadConfig(flags *globalFlags) (*config.Resolved, error) {
	var (
		cfg *config.Config
		err error
	)
	if flags.configPath != "" {
		cfg, err = config.Load(flags.configPath)
	} else {
		var wd string
		if wd, err = os.Getwd(); err != nil {
			return nil, err
		}
		cfg, err = config.LoadOptional(wd)
	}
	if err != nil {
		return nil, err
	}
	return config.Resolve(cfg)
}

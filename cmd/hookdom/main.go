package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/hookdom/internal/config"
	"github.com/vango-dev/hookdom/internal/errors"
	"github.com/vango-dev/hookdom/pkg/vdom"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globalFlags are shared by all commands.
type globalFlags struct {
	config string
	debug  bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(errors.FromError(err, "E000"))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:   "hookdom",
		Short: "Render hook-based component trees into a DOM",
		Long: `hookdom renders declarative virtual trees into a DOM, keeps the DOM in
sync across re-renders and gives function components persistent state
and effects through hooks.

The CLI drives the bundled demo application: render it to HTML, serve
it live to browsers, or upload a snapshot to S3.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "Config file (default: hookdom.json or hookdom.yaml in the working directory)")
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(
		renderCmd(&flags),
		serveCmd(&flags),
		snapshotCmd(&flags),
		versionCmd(),
	)
	return rootCmd
}

// loadConfig reads the config file named by --config, or the one in the
// working directory if there is one. Flags override file values.
func loadConfig(flags *globalFlags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if flags.config != "" {
		cfg, err = config.LoadFile(flags.config)
	} else {
		cfg, err = config.Load(".")
		if he := errors.FromError(err, ""); he != nil && he.Code == "E141" {
			cfg, err = config.New(), nil
		}
	}
	if err != nil {
		return nil, err
	}
	if flags.debug {
		cfg.Debug = true
	}
	if cfg.Debug {
		vdom.SetLogger(newLogger(os.Stderr, true))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger writes text logs to w, at debug level when debug is set.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}

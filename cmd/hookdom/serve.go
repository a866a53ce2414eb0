package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/hookdom/internal/config"
	"github.com/vango-dev/hookdom/internal/snapshot"
	"github.com/vango-dev/hookdom/pkg/server"
)

func serveCmd(flags *globalFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo application live",
		Long: `Start the preview server. Browsers load the rendered page and
receive every DOM update over a WebSocket; clicks are sent back to the
server and handled by the component tree.

Prometheus metrics are served at /metrics when metrics.enabled is set.
POST /snapshot uploads the current page when snapshot.bucket is
configured. With tracing.enabled, spans go to the global OpenTelemetry
provider; hookdom installs none, so they are dropped unless an embedding
program sets one.

Examples:
  hookdom serve
  hookdom serve --addr=0.0.0.0:8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Address()
			}
			srvCfg, err := serverConfig(cfg, addr, newLogger(cmd.ErrOrStderr(), cfg.Debug))
			if err != nil {
				return err
			}

			srv, err := server.New(srvCfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			success(out, "Serving on http://%s", addr)
			info(out, "Press Ctrl+C to stop")
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Address to listen on (default from config)")

	return cmd
}

// serverConfig maps the file configuration onto server.Config.
func serverConfig(cfg *config.Config, addr string, logger *slog.Logger) (server.Config, error) {
	timeout, err := cfg.WriteTimeout()
	if err != nil {
		return server.Config{}, err
	}
	sc := server.Config{
		Addr:           addr,
		Logger:         logger,
		WriteTimeout:   timeout,
		Debug:          cfg.Debug,
		MaxUpdateDepth: cfg.Render.MaxUpdateDepth,
		Namespace:      cfg.Metrics.Namespace,

		DisableMetricsEndpoint: !cfg.Metrics.Enabled,
	}
	if t := tracer(cfg, logger); t != nil {
		sc.Tracer = t
	}
	if cfg.Snapshot.Bucket != "" {
		sc.Snapshots = snapshot.NewStore(snapshot.NewClient(cfg.Snapshot), cfg.Snapshot.Bucket, cfg.Snapshot.Prefix)
	}
	return sc, nil
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vitwit/agentcommerce/internal/httpapi"
	"github.com/vitwit/agentcommerce/metrics"
	"github.com/vitwit/agentcommerce/types"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the explorer features as a JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.Server
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}

			var exporter metrics.Exporter = metrics.NoopRecorder{}
			if e, ok := a.recorder.(metrics.Exporter); ok {
				exporter = e
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, a, cfg, httpapi.New(a.ac, exporter))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	return cmd
}

func serve(ctx context.Context, a *app, cfg types.ServerConfig, h *httpapi.Handler) error {
	a.log.Info("starting api", map[string]any{
		"addr":    cfg.Addr,
		"metrics": a.cfg.EnableMetrics,
	})
	return httpapi.ListenAndServe(ctx, cfg, h.Routes(), a.log)
}

package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vitwit/agentcommerce/logger"
	"github.com/vitwit/agentcommerce/types"
)

const defaultShutdownTimeout = 5 * time.Second

// NewServer builds an http.Server with the configured timeouts.
func NewServer(cfg types.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// Serve runs srv on ln until ctx is cancelled, then shuts it down within
// shutdownTimeout. A clean shutdown returns nil.
func Serve(ctx context.Context, srv *http.Server, ln net.Listener, cfg types.ServerConfig, log logger.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("listening", map[string]any{"addr": ln.Addr().String()})
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		timeout := cfg.ShutdownTimeout
		if timeout <= 0 {
			timeout = defaultShutdownTimeout
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		log.Info("shutting down", map[string]any{"addr": ln.Addr().String()})
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// ListenAndServe listens on cfg.Addr and calls Serve.
func ListenAndServe(ctx context.Context, cfg types.ServerConfig, handler http.Handler, log logger.Logger) error {
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return err
	}
	return Serve(ctx, NewServer(cfg, handler), ln, cfg, log)
}

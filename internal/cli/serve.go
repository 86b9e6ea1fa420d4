package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/aretw0/tally/internal/config"
	httpadapter "github.com/aretw0/tally/pkg/adapters/http"
	mcpadapter "github.com/aretw0/tally/pkg/adapters/mcp"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MCP transports.
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// NewServeHandler mounts the session API and the metrics endpoint on one router.
func NewServeHandler(ctx context.Context, stack *Stack, cfg config.ServerConfig) (http.Handler, error) {
	api, err := httpadapter.NewHandler(ctx, stack.Engine, stack.Sessions,
		httpadapter.WithLogger(stack.Logger),
		httpadapter.WithMaxInputSize(stack.MaxInputSize),
	)
	if err != nil {
		return nil, fmt.Errorf("build api: %w", err)
	}

	r := chi.NewRouter()
	if cfg.MetricsPath != "" {
		r.Handle(cfg.MetricsPath, promhttp.HandlerFor(stack.Registry, promhttp.HandlerOpts{
			Registry: stack.Registry,
		}))
	}
	r.Mount("/", api)
	return r, nil
}

// Serve runs the HTTP server until ctx is cancelled, then drains it within
// the configured shutdown timeout.
func Serve(ctx context.Context, stack *Stack, cfg config.ServerConfig) error {
	handler, err := NewServeHandler(ctx, stack, cfg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		stack.Logger.Info("Tally HTTP server listening", "addr", cfg.Addr, "metrics", cfg.MetricsPath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	stack.Logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	stack.Logger.Info("Server exited")
	return <-errCh
}

// ServeMCP exposes the calculator as Model Context Protocol tools.
func ServeMCP(ctx context.Context, stack *Stack, transport, addr string) error {
	srv := mcpadapter.NewServer(stack.Engine, stack.Sessions,
		mcpadapter.WithLogger(stack.Logger),
		mcpadapter.WithMaxInputSize(stack.MaxInputSize),
	)

	switch transport {
	case TransportStdio:
		return srv.ServeStdio()
	case TransportSSE:
		return srv.ServeSSE(ctx, addr)
	default:
		return fmt.Errorf("unknown transport %q (want %s or %s)", transport, TransportStdio, TransportSSE)
	}
}

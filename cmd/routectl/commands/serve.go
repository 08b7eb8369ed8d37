package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/vitalvas/waypoint/config"
	"github.com/vitalvas/waypoint/container"
	"github.com/vitalvas/waypoint/router"
	"github.com/vitalvas/waypoint/routerhandlers"
)

func newServeCmd(manifestPath *string) *cobra.Command {
	var (
		addr     string
		enableH2 bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a manifest over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*manifestPath)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("addr") {
				cfg.Server.Address = addr
			}
			if cmd.Flags().Changed("h2c") {
				cfg.Server.H2C = enableH2
			}

			logger, err := config.NewLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			srv, err := newServer(cfg, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, srv, cfg, logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&enableH2, "h2c", false, "enable HTTP/2 over cleartext")

	return cmd
}

// newServer builds the HTTP server for cfg: the manifest router behind the
// recovery, request ID, server identification and access log nodes.
func newServer(cfg *config.Config, logger *zap.Logger) (*http.Server, error) {
	r, err := buildRouter(cfg, logger, container.New())
	if err != nil {
		return nil, err
	}

	serverNode, err := routerhandlers.Server(routerhandlers.ServerConfig{
		Hostname:    cfg.Server.Hostname,
		HostnameEnv: []string{"POD_NAME", "HOSTNAME"},
	})
	if err != nil {
		return nil, err
	}

	nodes := []router.Middleware{
		routerhandlers.AccessLog(routerhandlers.AccessLogConfig{Logger: logger}),
		serverNode,
		routerhandlers.RequestID(routerhandlers.RequestIDConfig{GenerateFunc: routerhandlers.GenerateUUIDv7}),
		routerhandlers.Recovery(routerhandlers.RecoveryConfig{Logger: logger}),
	}
	for _, n := range nodes {
		if err := r.Use(n); err != nil {
			return nil, err
		}
	}

	var handler http.Handler = r
	if cfg.Server.H2C {
		handler = h2c.NewHandler(handler, &http2.Server{})
	}

	return &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}, nil
}

// runServer serves until ctx is done, then shuts srv down gracefully.
func runServer(ctx context.Context, srv *http.Server, cfg *config.Config, logger *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving",
			zap.String("address", srv.Addr),
			zap.Bool("h2c", cfg.Server.H2C),
			zap.Int("routes", len(cfg.Routes)))

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

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

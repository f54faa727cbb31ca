package main

import (
	"context"
	"errors"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"board-chatbot/internal/http"
)

const readHeaderTimeout = 10 * time.Second

func newServeCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the chat API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), *configFile)
		},
	}
}

func runServe(ctx context.Context, configFile string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, configFile)
	if err != nil {
		return err
	}
	defer a.Close()

	server := &nethttp.Server{
		Addr: ":" + a.cfg.APIPort,
		Handler: http.NewRouter(&http.Deps{
			ChatService:    a.chat,
			PostService:    a.posts,
			Logger:         a.logger,
			ServiceName:    a.cfg.ServiceName,
			Version:        a.cfg.ServiceVersion,
			AllowedOrigins: a.cfg.CORSAllowedOrigins,
		}),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	return serve(ctx, server, a)
}

// serve runs server until ctx is done, then shuts it down within the
// configured grace period.
func serve(ctx context.Context, server *nethttp.Server, a *app) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("starting API server",
			zap.String("addr", server.Addr),
			zap.String("service", a.cfg.ServiceName),
			zap.String("version", a.cfg.ServiceVersion),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("shutting down API server", zap.Duration("timeout", a.cfg.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		a.logger.Error("API server stopped with error", zap.Error(err))
		return err
	}
	a.logger.Info("API server stopped")
	return nil
}

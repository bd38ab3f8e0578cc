// webhookd receives Pathao Courier webhook notifications and logs them.
// It is both a runnable receiver and a reference for wiring a Dispatcher
// into your own service.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/courierkit/pathao-go/internal/config"
	"github.com/courierkit/pathao-go/internal/version"
	"github.com/courierkit/pathao-go/internal/xhttp"
	"github.com/courierkit/pathao-go/internal/xhttp/middleware"
	"github.com/courierkit/pathao-go/internal/xslog"
	"github.com/courierkit/pathao-go/webhook"
)

func main() {
	_ = godotenv.Load()

	logger := xslog.NewLoggerFromEnv(os.Stdout)
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:     "webhookd",
		Short:   "Pathao Courier webhook receiver",
		Version: version.Get(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), logger)
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.ErrorContext(ctx, "fatal error", xslog.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Read()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	opts := []webhook.DispatcherOption{webhook.WithLogger(logger)}
	if cfg.IntegrationSecret != "" {
		opts = append(opts, webhook.WithIntegrationSecret(cfg.IntegrationSecret))
	}

	dispatcher := webhook.NewDispatcher(cfg.WebhookSecret, opts...)
	dispatcher.OnAny(func(ctx context.Context, event webhook.Event) error {
		attrs := []any{xslog.WebhookEvent(string(event.Type()))}
		switch e := event.(type) {
		case webhook.OrderEvent:
			attrs = append(attrs, xslog.ConsignmentID(e.ConsignmentID), xslog.StoreID(e.StoreID))
		case webhook.StoreEvent:
			attrs = append(attrs, xslog.StoreID(e.StoreID))
		}
		logger.InfoContext(ctx, "webhook received", attrs...)
		return nil
	})
	dispatcher.OnError(func(ctx context.Context, err error) {
		logger.WarnContext(ctx, "webhook rejected", xslog.Error(err))
	})

	mux := http.NewServeMux()
	mux.Handle("POST /webhooks/pathao", dispatcher)
	mux.HandleFunc("GET /livez", func(w http.ResponseWriter, _ *http.Request) {
		xhttp.WriteOK(w, map[string]string{"status": "ok"})
	})

	wrapped := middleware.Chain(mux,
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Logging,
		middleware.Recovery,
	)

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           wrapped,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "starting webhook receiver",
			slog.String("addr", cfg.Addr),
			slog.String("version", version.Get()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received, shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

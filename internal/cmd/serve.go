package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"coldreach/internal/config"
	"coldreach/internal/logging"
	"coldreach/internal/pipeline"
	"coldreach/internal/server"
	"coldreach/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the outreach HTTP API",
	Long: `Start an HTTP server exposing POST /api/v1/outreach. Requests are
validated, run through the drafting pipeline, and answered with the
recommended message, alternatives, and follow-up timing.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	orchestrator := pipeline.New(pipeline.Config{
		Timeout:          cfg.PipelineTimeout,
		MaxDraftAttempts: cfg.MaxDraftAttempts,
	}, logger)

	var history *store.History
	if cfg.HistoryDBPath != "" {
		history, err = store.Open(cfg.HistoryDBPath)
		if err != nil {
			return fmt.Errorf("failed to open history store: %w", err)
		}
		defer history.Close()
		logger.Info("request history enabled", zap.String("path", cfg.HistoryDBPath))
	}

	srv := server.New(orchestrator, history, logger)
	httpServer := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: srv.Routes(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()
	logger.Info("listening", zap.String("addr", cfg.ListenAddr), zap.String("env", cfg.Env))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutting down", zap.String("signal", sig.String()))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}
}

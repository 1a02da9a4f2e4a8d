package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/EdukronCodes/mcp-server-box/internal/common"
	"github.com/EdukronCodes/mcp-server-box/internal/decode"
	"github.com/EdukronCodes/mcp-server-box/internal/invoices"
	"github.com/EdukronCodes/mcp-server-box/internal/server"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	decoder := decode.NewPDFDecoder(logger)
	svc, err := invoices.NewService(cfg.Invoices.Directory, decoder, cfg.Invoices.CacheSize, logger)
	if err != nil {
		logger.Error("failed to create invoice service", "error", err)
		os.Exit(1)
	}

	srv := server.New(svc, logger)
	httpServer := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: srv.Handler(),
	}

	go func() {
		logger.Info("http.serve", "addr", cfg.Server.HTTPAddr, "dir", cfg.Invoices.Directory)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
	logger.Info("stopped")
}

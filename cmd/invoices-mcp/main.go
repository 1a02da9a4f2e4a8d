package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/EdukronCodes/mcp-server-box/internal/common"
	"github.com/EdukronCodes/mcp-server-box/internal/decode"
	"github.com/EdukronCodes/mcp-server-box/internal/invoices"
	"github.com/EdukronCodes/mcp-server-box/internal/mcptools"
)

func main() {
	_ = godotenv.Load()

	// stdout carries the MCP protocol, so logs go to stderr
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	decoder := decode.NewPDFDecoder(logger)
	svc, err := invoices.NewService(cfg.Invoices.Directory, decoder, cfg.Invoices.CacheSize, logger)
	if err != nil {
		logger.Error("failed to create invoice service", "error", err)
		os.Exit(1)
	}

	if err := mcptools.Run(context.Background(), svc, logger); err != nil {
		logger.Error("mcp serve failed", "error", err)
		os.Exit(1)
	}
}

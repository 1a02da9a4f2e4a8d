package main

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/EdukronCodes/mcp-server-box/constants"
	"github.com/EdukronCodes/mcp-server-box/gen/ent"
	"github.com/EdukronCodes/mcp-server-box/internal/common"
	"github.com/EdukronCodes/mcp-server-box/internal/decode"
	"github.com/EdukronCodes/mcp-server-box/internal/export"
	"github.com/EdukronCodes/mcp-server-box/internal/extract"
	"github.com/EdukronCodes/mcp-server-box/internal/ingest"
	repo "github.com/EdukronCodes/mcp-server-box/internal/repository"
)

func main() {
	var (
		inmem = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir   = flag.String("dir", "", "directory to process invoices from (overrides INVOICE_DIR)")
		out   = flag.String("out", "", "output XLSX file path (defaults to parent directory)")
	)
	flag.Parse()

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if *dir == "" {
		*dir = cfg.Invoices.Directory
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "invoices.xlsx")
	}

	ctx := context.Background()

	entc, pool, err := openDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("failed to create schema", "error", err)
		os.Exit(1)
	}

	filesRepo := repo.NewInvoiceFileRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)
	invoicesRepo := repo.NewInvoiceRepository(entc, logger)

	decoder := decode.NewPDFDecoder(logger)
	assembler := extract.NewAssembler(logger)

	paths, stats, err := ingest.ListDirectory(*dir)
	if err != nil {
		logger.Error("failed to scan directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	logger.Info("ingestion scan complete",
		"dir", *dir,
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"failed", stats.Failed)

	processed := 0
	deduplicated := 0
	failures := 0

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Error("failed to read file", "path", path, "error", err)
			failures++
			continue
		}

		hash := sha256.Sum256(data)
		fileName := filepath.Base(path)
		row, existed, err := filesRepo.UpsertByHash(ctx, path, fileName,
			constants.NormalizeExt(filepath.Ext(fileName)), len(data), hash[:], time.Now().UTC())
		if err != nil {
			logger.Error("failed to register file", "path", path, "error", err)
			failures++
			continue
		}
		if existed {
			logger.Info("skipping duplicate file", "path", path, "file_id", row.ID)
			deduplicated++
			continue
		}

		job, err := jobsRepo.Start(ctx, row.ID)
		if err != nil {
			failures++
			continue
		}

		text, err := decoder.DecodeBytes(ctx, fileName, data)
		if err != nil {
			logger.Error("failed to decode file", "path", path, "error", err)
			_ = jobsRepo.FinishFailure(ctx, job.ID, err.Error())
			failures++
			continue
		}

		rec := assembler.Assemble(fileName, text)
		invoiceID, err := invoicesRepo.CreateFromRecord(ctx, rec)
		if err != nil {
			_ = jobsRepo.FinishFailure(ctx, job.ID, err.Error())
			failures++
			continue
		}

		extracted, err := json.Marshal(rec)
		if err != nil {
			logger.Error("failed to marshal record", "file_name", fileName, "error", err)
			extracted = []byte("{}")
		}
		if err := jobsRepo.FinishSuccess(ctx, job.ID, invoiceID, rec.ConfidenceScore, text, extracted); err != nil {
			failures++
			continue
		}
		processed++
	}

	exportService := export.NewService(invoicesRepo, logger)
	xlsxBytes, err := exportService.ExportInvoicesXLSX(ctx)
	if err != nil {
		logger.Error("failed to export invoices", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	logger.Info("batch processing complete",
		"files_processed", processed,
		"deduplicated", deduplicated,
		"failures", failures,
		"output_file", *out)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Files processed: %d\n", processed)
	fmt.Printf("- Duplicates skipped: %d\n", deduplicated)
	fmt.Printf("- Failures: %d\n", failures)
	fmt.Printf("- Output: %s\n", *out)
}

// openDatabase picks Postgres when DB_URL is configured, otherwise falls
// back to embedded SQLite.
func openDatabase(ctx context.Context, cfg *common.Config, inmem bool, logger *slog.Logger) (*ent.Client, *pgxpool.Pool, error) {
	if inmem || cfg.Database.DSN == "" {
		entc, err := repo.OpenSQLite("", logger)
		return entc, nil, err
	}
	return repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
}

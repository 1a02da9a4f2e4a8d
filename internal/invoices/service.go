package invoices

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/EdukronCodes/mcp-server-box/internal/common"
	"github.com/EdukronCodes/mcp-server-box/internal/decode"
	"github.com/EdukronCodes/mcp-server-box/internal/entity"
	"github.com/EdukronCodes/mcp-server-box/internal/extract"
	"github.com/EdukronCodes/mcp-server-box/internal/ingest"
)

// BatchResult is the outcome of processing a whole invoice directory.
type BatchResult struct {
	TotalProcessed int               `json:"total_processed"`
	Invoices       []*entity.Invoice `json:"invoices"`
	Summary        extract.Summary   `json:"summary"`
}

// SearchResult holds the invoices matching a query.
type SearchResult struct {
	Query    string            `json:"query"`
	Matches  int               `json:"matches"`
	Invoices []*entity.Invoice `json:"invoices"`
}

// Listing enumerates the invoice files available for processing.
type Listing struct {
	Directory string   `json:"directory"`
	Count     int      `json:"count"`
	Files     []string `json:"files"`
}

// InvoiceDigest is the per-invoice line of a summary report.
type InvoiceDigest struct {
	FileName      string  `json:"file_name"`
	InvoiceNumber string  `json:"invoice_number"`
	InvoiceDate   string  `json:"invoice_date"`
	TotalAmount   float64 `json:"total_amount"`
	Confidence    float64 `json:"confidence"`
}

// SummaryReport is the aggregate view over all invoices in the directory.
type SummaryReport struct {
	TotalInvoices     int             `json:"total_invoices"`
	TotalAmount       float64         `json:"total_amount"`
	TotalTax          float64         `json:"total_tax"`
	AverageConfidence float64         `json:"average_confidence"`
	Invoices          []InvoiceDigest `json:"invoices"`
}

// Service is the in-process facade over decode + extraction that the HTTP
// and MCP surfaces call. Single-invoice results are cached by file name.
type Service struct {
	dir       string
	decoder   decode.Decoder
	assembler *extract.Assembler
	cache     *lru.Cache[string, *entity.Invoice]
	logger    *slog.Logger
}

func NewService(dir string, decoder decode.Decoder, cacheSize int, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cacheSize <= 0 {
		cacheSize = 256
	}
	cache, err := lru.New[string, *entity.Invoice](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create cache: %w", err)
	}
	return &Service{
		dir:       dir,
		decoder:   decoder,
		assembler: extract.NewAssembler(logger),
		cache:     cache,
		logger:    logger,
	}, nil
}

// Assembler exposes the underlying assembler, for callers that already
// hold decoded text.
func (s *Service) Assembler() *extract.Assembler {
	return s.assembler
}

// ProcessInvoice decodes and extracts a single invoice by file name.
// Decode failure is terminal for the document and surfaces as an error.
func (s *Service) ProcessInvoice(ctx context.Context, fileName string) (*entity.Invoice, error) {
	if inv, ok := s.cache.Get(fileName); ok {
		return inv, nil
	}

	path := filepath.Join(s.dir, fileName)
	if _, err := os.Stat(path); err != nil {
		return nil, common.NewAppError("INVOICE_NOT_FOUND", "invoice file not found: "+fileName, common.ErrNotFound)
	}

	text, err := s.decoder.Decode(ctx, path)
	if err != nil {
		return nil, err
	}
	inv := s.assembler.Assemble(fileName, text)
	s.cache.Add(fileName, inv)
	return inv, nil
}

// ProcessAll decodes and extracts every invoice in the directory. A
// per-document decode failure is logged and that document skipped, so the
// result may cover fewer documents than the directory holds.
func (s *Service) ProcessAll(ctx context.Context) (*BatchResult, error) {
	paths, stats, err := ingest.ListDirectory(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.dir, err)
	}
	s.logger.Debug("batch.scan", "dir", s.dir, "scanned", stats.Scanned, "matched", stats.Matched)

	sources := make([]extract.Source, 0, len(paths))
	for _, path := range paths {
		text, err := s.decoder.Decode(ctx, path)
		sources = append(sources, extract.Source{
			ID:   filepath.Base(path),
			Text: text,
			Err:  err,
		})
	}

	records := s.assembler.AssembleMany(sources)
	return &BatchResult{
		TotalProcessed: len(records),
		Invoices:       records,
		Summary:        extract.Summarize(records),
	}, nil
}

// ListInvoices lists the invoice files available in the directory.
func (s *Service) ListInvoices() (*Listing, error) {
	if _, err := os.Stat(s.dir); err != nil {
		return nil, common.NewAppError("DIR_NOT_FOUND", "invoice directory not found: "+s.dir, common.ErrNotFound)
	}
	paths, _, err := ingest.ListDirectory(s.dir)
	if err != nil {
		return nil, err
	}
	files := make([]string, len(paths))
	for i, p := range paths {
		files[i] = filepath.Base(p)
	}
	return &Listing{Directory: s.dir, Count: len(files), Files: files}, nil
}

// Summary builds the aggregate report over all invoices in the directory.
func (s *Service) Summary(ctx context.Context) (*SummaryReport, error) {
	batch, err := s.ProcessAll(ctx)
	if err != nil {
		return nil, err
	}
	report := &SummaryReport{
		TotalInvoices:     batch.TotalProcessed,
		TotalAmount:       batch.Summary.TotalAmount,
		TotalTax:          batch.Summary.TotalTax,
		AverageConfidence: batch.Summary.AverageConfidence,
		Invoices:          make([]InvoiceDigest, 0, len(batch.Invoices)),
	}
	for _, inv := range batch.Invoices {
		report.Invoices = append(report.Invoices, InvoiceDigest{
			FileName:      inv.FileName,
			InvoiceNumber: inv.InvoiceNumber,
			InvoiceDate:   inv.InvoiceDate,
			TotalAmount:   inv.TotalAmount,
			Confidence:    inv.ConfidenceScore,
		})
	}
	return report, nil
}

// Search matches invoices by invoice number, invoice date, file name or
// vendor name (case-insensitive substring).
func (s *Service) Search(ctx context.Context, query string) (*SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, common.NewAppError("EMPTY_QUERY", "query parameter required", common.ErrInvalidInput)
	}
	batch, err := s.ProcessAll(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	matches := make([]*entity.Invoice, 0)
	for _, inv := range batch.Invoices {
		if strings.Contains(strings.ToLower(inv.InvoiceNumber), q) ||
			strings.Contains(inv.InvoiceDate, q) ||
			strings.Contains(strings.ToLower(inv.FileName), q) ||
			strings.Contains(strings.ToLower(inv.VendorName), q) {
			matches = append(matches, inv)
		}
	}
	return &SearchResult{Query: query, Matches: len(matches), Invoices: matches}, nil
}

package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/EdukronCodes/mcp-server-box/internal/entity"
)

// InvoiceLister yields the persisted records to export. Satisfied by the
// invoice repository.
type InvoiceLister interface {
	List(ctx context.Context) ([]*entity.Invoice, error)
}

// Service is a tiny façade over the invoice repository that produces XLSX
// bytes for exports of persisted records.
type Service struct {
	invoicesRepo InvoiceLister
	logger       *slog.Logger
}

func NewService(repo InvoiceLister, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{invoicesRepo: repo, logger: logger}
}

// ExportInvoicesXLSX returns an XLSX workbook (as bytes) covering every
// persisted invoice record.
func (s *Service) ExportInvoicesXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	recs, err := s.invoicesRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}

	out, err := RecordsXLSX(recs)
	if err != nil {
		return nil, err
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

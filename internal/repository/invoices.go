package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/EdukronCodes/mcp-server-box/gen/ent"
	entinvoice "github.com/EdukronCodes/mcp-server-box/gen/ent/invoice"
	"github.com/EdukronCodes/mcp-server-box/internal/entity"
	"github.com/EdukronCodes/mcp-server-box/internal/utils"
)

type InvoiceRepository interface {
	List(ctx context.Context) ([]*entity.Invoice, error)
	CreateFromRecord(ctx context.Context, rec *entity.Invoice) (uuid.UUID, error)
}

type invoiceRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInvoiceRepository(client *ent.Client, logger *slog.Logger) InvoiceRepository {
	return &invoiceRepository{
		client: client,
		logger: logger,
	}
}

func (r *invoiceRepository) List(ctx context.Context) ([]*entity.Invoice, error) {
	rows, err := r.client.Invoice.Query().
		Order(entinvoice.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list invoices", "error", err)
		return nil, err
	}

	result := make([]*entity.Invoice, len(rows))
	for i, row := range rows {
		result[i] = utils.ToInvoice(row)
	}
	return result, nil
}

func (r *invoiceRepository) CreateFromRecord(ctx context.Context, rec *entity.Invoice) (uuid.UUID, error) {
	row, err := r.client.Invoice.Create().
		SetFileName(rec.FileName).
		SetInvoiceNumber(rec.InvoiceNumber).
		SetInvoiceDate(rec.InvoiceDate).
		SetDueDate(rec.DueDate).
		SetVendorName(rec.VendorName).
		SetVendorAddress(rec.VendorAddress).
		SetCustomerName(rec.CustomerName).
		SetCustomerAddress(rec.CustomerAddress).
		SetSubtotal(rec.Subtotal).
		SetTaxAmount(rec.TaxAmount).
		SetTotalAmount(rec.TotalAmount).
		SetCurrency(rec.Currency).
		SetRawText(rec.RawText).
		SetConfidenceScore(rec.ConfidenceScore).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create invoice", "file_name", rec.FileName, "error", err)
		return uuid.Nil, err
	}
	return row.ID, nil
}

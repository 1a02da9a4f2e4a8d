package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/EdukronCodes/mcp-server-box/gen/ent"
	entfile "github.com/EdukronCodes/mcp-server-box/gen/ent/invoicefile"
)

type InvoiceFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.InvoiceFile, error)
	GetByHash(ctx context.Context, hash []byte) (*ent.InvoiceFile, error)
	Create(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.InvoiceFile, error)
	UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.InvoiceFile, bool, error)
}

type invoiceFileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewInvoiceFileRepository(entc *ent.Client, logger *slog.Logger) InvoiceFileRepository {
	return &invoiceFileRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *invoiceFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.InvoiceFile, error) {
	return r.ent.InvoiceFile.Get(ctx, id)
}

func (r *invoiceFileRepo) GetByHash(ctx context.Context, hash []byte) (*ent.InvoiceFile, error) {
	return r.ent.InvoiceFile.Query().
		Where(entfile.ContentHash(hash)).
		Only(ctx)
}

func (r *invoiceFileRepo) Create(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.InvoiceFile, error) {
	row, err := r.ent.InvoiceFile.Create().
		SetSourcePath(sourcePath).
		SetFilename(filename).
		SetFileExt(ext).
		SetFileSize(size).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create invoice file", "source_path", sourcePath, "error", err)
		return nil, err
	}
	return row, nil
}

// UpsertByHash dedups ingested files on content hash.
func (r *invoiceFileRepo) UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.InvoiceFile, bool, error) {
	if existing, err := r.GetByHash(ctx, hash); err == nil {
		return existing, true, nil
	}
	row, err := r.Create(ctx, sourcePath, filename, ext, size, hash, uploadedAt)
	if err != nil {
		return nil, false, err
	}
	return row, false, nil
}

package utils

import (
	"github.com/EdukronCodes/mcp-server-box/gen/ent"
	"github.com/EdukronCodes/mcp-server-box/internal/entity"
)

func ToInvoice(e *ent.Invoice) *entity.Invoice {
	return &entity.Invoice{
		FileName:        e.FileName,
		InvoiceNumber:   e.InvoiceNumber,
		InvoiceDate:     e.InvoiceDate,
		DueDate:         e.DueDate,
		VendorName:      e.VendorName,
		VendorAddress:   e.VendorAddress,
		CustomerName:    e.CustomerName,
		CustomerAddress: e.CustomerAddress,
		Subtotal:        e.Subtotal,
		TaxAmount:       e.TaxAmount,
		TotalAmount:     e.TotalAmount,
		Currency:        e.Currency,
		LineItems:       []entity.LineItem{},
		RawText:         e.RawText,
		ConfidenceScore: e.ConfidenceScore,
	}
}

func ToInvoiceFile(e *ent.InvoiceFile) *entity.InvoiceFile {
	return &entity.InvoiceFile{
		ID:          e.ID,
		SourcePath:  e.SourcePath,
		ContentHash: e.ContentHash,
		Filename:    e.Filename,
		FileExt:     e.FileExt,
		FileSize:    e.FileSize,
		UploadedAt:  e.UploadedAt,
	}
}

func ToExtractJob(e *ent.ExtractJob) *entity.ExtractJob {
	return &entity.ExtractJob{
		ID:                   e.ID,
		FileID:               e.FileID,
		InvoiceID:            e.InvoiceID,
		StartedAt:            e.StartedAt,
		FinishedAt:           e.FinishedAt,
		Status:               e.Status,
		ErrorMessage:         e.ErrorMessage,
		ExtractionConfidence: e.ExtractionConfidence,
		RawText:              e.RawText,
		ExtractedJSON:        e.ExtractedJSON,
	}
}

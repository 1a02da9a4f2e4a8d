package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ExtractJob represents one extraction run over one file for data transfer
// between layers.
type ExtractJob struct {
	ID                   uuid.UUID       `json:"id"`
	FileID               uuid.UUID       `json:"file_id"`
	InvoiceID            *uuid.UUID      `json:"invoice_id,omitempty"`
	StartedAt            time.Time       `json:"started_at"`
	FinishedAt           *time.Time      `json:"finished_at,omitempty"`
	Status               *string         `json:"status,omitempty"`
	ErrorMessage         *string         `json:"error_message,omitempty"`
	ExtractionConfidence *float64        `json:"extraction_confidence,omitempty"`
	RawText              *string         `json:"raw_text,omitempty"`
	ExtractedJSON        json.RawMessage `json:"extracted_json,omitempty"`
}

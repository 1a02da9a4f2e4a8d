package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/EdukronCodes/mcp-server-box/constants"
	"github.com/EdukronCodes/mcp-server-box/gen/ent"
)

type ExtractJobRepository interface {
	Start(ctx context.Context, fileID uuid.UUID) (*ent.ExtractJob, error)
	FinishSuccess(ctx context.Context, jobID, invoiceID uuid.UUID, confidence float64, rawText string, extracted json.RawMessage) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, errMsg string) error
}

type extractJobRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewExtractJobRepository(entc *ent.Client, logger *slog.Logger) ExtractJobRepository {
	return &extractJobRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *extractJobRepo) Start(ctx context.Context, fileID uuid.UUID) (*ent.ExtractJob, error) {
	row, err := r.ent.ExtractJob.Create().
		SetFileID(fileID).
		SetStartedAt(time.Now().UTC()).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to start extract job", "file_id", fileID, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *extractJobRepo) FinishSuccess(ctx context.Context, jobID, invoiceID uuid.UUID, confidence float64, rawText string, extracted json.RawMessage) error {
	err := r.ent.ExtractJob.UpdateOneID(jobID).
		SetInvoiceID(invoiceID).
		SetStatus(string(constants.JobStatusOK)).
		SetExtractionConfidence(confidence).
		SetRawText(rawText).
		SetExtractedJSON(extracted).
		SetFinishedAt(time.Now().UTC()).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to finish extract job", "job_id", jobID, "error", err)
	}
	return err
}

func (r *extractJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, errMsg string) error {
	err := r.ent.ExtractJob.UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(errMsg).
		SetFinishedAt(time.Now().UTC()).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to mark extract job failed", "job_id", jobID, "error", err)
	}
	return err
}

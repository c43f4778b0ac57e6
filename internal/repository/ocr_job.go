package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finbot-vn/finbot/constants"
	"github.com/finbot-vn/finbot/gen/ent"
	"github.com/finbot-vn/finbot/gen/ent/ocrjob"
	"github.com/finbot-vn/finbot/gen/ent/ocrresult"
	"github.com/finbot-vn/finbot/internal/ocrexpense"
)

// CreateJobRequest carries the file metadata recorded when an upload lands.
type CreateJobRequest struct {
	SessionID        uuid.UUID
	UserID           uuid.UUID
	OriginalFilename string
	FileSize         int64
	ContentType      string
	Format           string
	Hints            ocrexpense.Hints
}

type OcrJobRepository interface {
	Create(ctx context.Context, req CreateJobRequest) (*ent.OcrJob, error)
	MarkProcessing(ctx context.Context, jobID uuid.UUID) error
	Complete(ctx context.Context, jobID uuid.UUID, res ocrexpense.Result, processingTime float64, wordCount int) (*ent.OcrResult, error)
	Fail(ctx context.Context, jobID uuid.UUID, message string) error
	LatestResultForSession(ctx context.Context, sessionID uuid.UUID) (*ent.OcrResult, error)
}

type ocrJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewOcrJobRepository(entc *ent.Client, log *slog.Logger) OcrJobRepository {
	return &ocrJobRepo{ent: entc, log: log}
}

func (r *ocrJobRepo) Create(ctx context.Context, req CreateJobRequest) (*ent.OcrJob, error) {
	var hints json.RawMessage
	if b, err := json.Marshal(req.Hints); err == nil {
		hints = b
	}
	job, err := r.ent.OcrJob.
		Create().
		SetSessionID(req.SessionID).
		SetUserID(req.UserID).
		SetOriginalFilename(req.OriginalFilename).
		SetFileSize(req.FileSize).
		SetContentType(req.ContentType).
		SetFormat(req.Format).
		SetHints(hints).
		SetStatus(string(constants.JobStatusPending)).
		Save(ctx)
	if err != nil {
		r.log.Error("ocr_job create failed", "session_id", req.SessionID, "err", err)
		return nil, err
	}
	r.log.Info("ocr_job created", "job_id", job.ID, "session_id", req.SessionID, "format", req.Format)
	return job, nil
}

func (r *ocrJobRepo) MarkProcessing(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.ent.OcrJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusProcessing)).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("ocr_job mark processing failed", "job_id", jobID, "err", err)
	}
	return err
}

func (r *ocrJobRepo) Complete(ctx context.Context, jobID uuid.UUID, res ocrexpense.Result, processingTime float64, wordCount int) (*ent.OcrResult, error) {
	items, err := json.Marshal(res.Items)
	if err != nil {
		return nil, err
	}
	meta, err := json.Marshal(res.Meta)
	if err != nil {
		return nil, err
	}

	row, err := r.ent.OcrResult.
		Create().
		SetJobID(jobID).
		SetTransactionDate(res.TransactionDate).
		SetAmountValue(res.Amount.Value).
		SetAmountCurrency(res.Amount.Currency).
		SetCategoryCode(res.Category.Code).
		SetCategoryName(res.Category.Name).
		SetItems(items).
		SetMeta(meta).
		SetProcessingTime(processingTime).
		SetWordCount(wordCount).
		Save(ctx)
	if err != nil {
		r.log.Error("ocr_result create failed", "job_id", jobID, "err", err)
		return nil, err
	}

	_, err = r.ent.OcrJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusCompleted)).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("ocr_job complete failed", "job_id", jobID, "err", err)
		return nil, err
	}
	r.log.Info("ocr_job completed", "job_id", jobID, "result_id", row.ID)
	return row, nil
}

func (r *ocrJobRepo) Fail(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.OcrJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("ocr_job fail update failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("ocr_job failed", "job_id", jobID, "error", message)
	return nil
}

func (r *ocrJobRepo) LatestResultForSession(ctx context.Context, sessionID uuid.UUID) (*ent.OcrResult, error) {
	return r.ent.OcrResult.
		Query().
		Where(ocrresult.HasJobWith(ocrjob.SessionID(sessionID))).
		Order(ent.Desc(ocrresult.FieldCreatedAt)).
		First(ctx)
}

package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/finbot-vn/finbot/gen/ent"
	"github.com/finbot-vn/finbot/internal/ocrexpense"
	"github.com/finbot-vn/finbot/internal/pipeline"
)

// PipelineStore adapts the ent-backed repositories to the narrow interfaces
// the extraction pipeline depends on.
type PipelineStore struct {
	jobs     OcrJobRepository
	messages MessageRepository
}

func NewPipelineStore(jobs OcrJobRepository, messages MessageRepository) *PipelineStore {
	return &PipelineStore{jobs: jobs, messages: messages}
}

var (
	_ pipeline.JobStore         = (*PipelineStore)(nil)
	_ pipeline.ContextPublisher = (*PipelineStore)(nil)
)

func (s *PipelineStore) CreateJob(ctx context.Context, job pipeline.JobRecord) (uuid.UUID, error) {
	row, err := s.jobs.Create(ctx, CreateJobRequest{
		SessionID:        job.SessionID,
		UserID:           job.UserID,
		OriginalFilename: job.OriginalFilename,
		FileSize:         job.FileSize,
		ContentType:      job.ContentType,
		Format:           job.Format,
		Hints:            job.Hints,
	})
	if err != nil {
		return uuid.Nil, err
	}
	return row.ID, nil
}

func (s *PipelineStore) MarkProcessing(ctx context.Context, jobID uuid.UUID) error {
	return s.jobs.MarkProcessing(ctx, jobID)
}

func (s *PipelineStore) CompleteJob(ctx context.Context, jobID uuid.UUID, res ocrexpense.Result, processingSeconds float64, wordCount int) error {
	_, err := s.jobs.Complete(ctx, jobID, res, processingSeconds, wordCount)
	return err
}

func (s *PipelineStore) FailJob(ctx context.Context, jobID uuid.UUID, message string) error {
	return s.jobs.Fail(ctx, jobID, message)
}

func (s *PipelineStore) LatestResultForSession(ctx context.Context, sessionID uuid.UUID) (ocrexpense.Result, bool, error) {
	row, err := s.jobs.LatestResultForSession(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ocrexpense.Result{}, false, nil
		}
		return ocrexpense.Result{}, false, err
	}
	return resultFromRow(row)
}

func (s *PipelineStore) PublishSystemMessage(ctx context.Context, sessionID, userID uuid.UUID, content string, metadata json.RawMessage) error {
	_, err := s.messages.Save(ctx, sessionID, userID, "system", content, metadata)
	return err
}

func resultFromRow(row *ent.OcrResult) (ocrexpense.Result, bool, error) {
	res := ocrexpense.Result{
		TransactionDate: row.TransactionDate,
		Amount: ocrexpense.Amount{
			Value:    row.AmountValue,
			Currency: row.AmountCurrency,
		},
		Category: ocrexpense.Category{
			Code: row.CategoryCode,
			Name: row.CategoryName,
		},
	}
	if len(row.Items) > 0 {
		if err := json.Unmarshal(row.Items, &res.Items); err != nil {
			return ocrexpense.Result{}, false, err
		}
	}
	if len(row.Meta) > 0 {
		if err := json.Unmarshal(row.Meta, &res.Meta); err != nil {
			return ocrexpense.Result{}, false, err
		}
	}
	return res, true, nil
}

package pipeline

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/finbot-vn/finbot/internal/ocrexpense"
)

// JobStore is the persistence surface the pipeline needs: save a job record,
// advance its status, save the result record. Identity assignment belongs to
// the store.
type JobStore interface {
	CreateJob(ctx context.Context, job JobRecord) (uuid.UUID, error)
	MarkProcessing(ctx context.Context, jobID uuid.UUID) error
	CompleteJob(ctx context.Context, jobID uuid.UUID, res ocrexpense.Result, processingSeconds float64, wordCount int) error
	FailJob(ctx context.Context, jobID uuid.UUID, message string) error
	LatestResultForSession(ctx context.Context, sessionID uuid.UUID) (ocrexpense.Result, bool, error)
}

// JobRecord is the file metadata persisted when an upload lands.
type JobRecord struct {
	SessionID        uuid.UUID
	UserID           uuid.UUID
	OriginalFilename string
	FileSize         int64
	ContentType      string
	Format           string
	Hints            ocrexpense.Hints
}

// ContextPublisher pushes a human-readable expense summary into the
// conversation so the chat flow can pick it up.
type ContextPublisher interface {
	PublishSystemMessage(ctx context.Context, sessionID, userID uuid.UUID, content string, metadata json.RawMessage) error
}

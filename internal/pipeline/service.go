package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finbot-vn/finbot/constants"
	"github.com/finbot-vn/finbot/internal/common"
	"github.com/finbot-vn/finbot/internal/imageprep"
	"github.com/finbot-vn/finbot/internal/ocrexpense"
	"github.com/finbot-vn/finbot/internal/vision"
)

// Config holds upload handling settings for the extraction service.
type Config struct {
	UploadDir   string
	MaxFileSize int64
}

// Service runs one receipt extraction start to finish: file gate, scratch
// save, image normalization, vision call, post-processing, validation,
// persistence and context publication. Strictly sequential per request; the
// scratch file is removed on every exit path.
//
// The post-processor and validator stay pure; every side effect lives here.
type Service struct {
	logger    *slog.Logger
	cfg       Config
	preparer  imageprep.Preparer
	extractor vision.Extractor
	post      *ocrexpense.PostProcessor
	validator *ocrexpense.Validator
	store     JobStore
	publisher ContextPublisher
}

func NewService(
	logger *slog.Logger,
	cfg Config,
	preparer imageprep.Preparer,
	extractor vision.Extractor,
	post *ocrexpense.PostProcessor,
	validator *ocrexpense.Validator,
	store JobStore,
	publisher ContextPublisher,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "./uploads"
	}
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = constants.MaxUploadBytes
	}
	return &Service{
		logger:    logger,
		cfg:       cfg,
		preparer:  preparer,
		extractor: extractor,
		post:      post,
		validator: validator,
		store:     store,
		publisher: publisher,
	}
}

// ExtractRequest is one uploaded receipt plus its conversation coordinates.
type ExtractRequest struct {
	SessionID   uuid.UUID
	UserID      uuid.UUID
	Filename    string
	ContentType string
	Data        []byte
	Hints       ocrexpense.Hints
}

// ExtractResponse reports the persisted job and its canonical result.
type ExtractResponse struct {
	JobID  uuid.UUID
	Status constants.JobStatus
	Result ocrexpense.Result
}

// ExtractExpense runs the full pipeline for one upload.
func (s *Service) ExtractExpense(ctx context.Context, req ExtractRequest) (ExtractResponse, error) {
	start := time.Now()

	if err := s.validateFile(req); err != nil {
		return ExtractResponse{}, err
	}

	format := constants.MapContentTypeToFormat(req.ContentType)
	jobID, err := s.store.CreateJob(ctx, JobRecord{
		SessionID:        req.SessionID,
		UserID:           req.UserID,
		OriginalFilename: req.Filename,
		FileSize:         int64(len(req.Data)),
		ContentType:      req.ContentType,
		Format:           format,
		Hints:            req.Hints,
	})
	if err != nil {
		return ExtractResponse{}, common.NewAppError(common.CodeInternal, "create job record", err)
	}

	scratch, err := s.saveScratch(jobID, req)
	if err != nil {
		_ = s.store.FailJob(ctx, jobID, err.Error())
		return ExtractResponse{}, common.NewAppError(common.CodeInternal, "save upload", err)
	}
	defer func() {
		if rmErr := os.Remove(scratch); rmErr != nil && !os.IsNotExist(rmErr) {
			s.logger.Warn("ocr.scratch_cleanup_failed", "path", scratch, "err", rmErr)
		}
	}()

	if err := s.store.MarkProcessing(ctx, jobID); err != nil {
		appErr := common.NewAppError(common.CodeInternal, "mark job processing", err)
		_ = s.store.FailJob(ctx, jobID, appErr.Error())
		return ExtractResponse{}, appErr
	}

	result, err := s.runExtraction(ctx, jobID, scratch, req)
	if err != nil {
		return ExtractResponse{}, err
	}

	elapsed := time.Since(start).Seconds()
	if err := s.store.CompleteJob(ctx, jobID, result, elapsed, estimateWordCount(result)); err != nil {
		return ExtractResponse{}, common.NewAppError(common.CodeInternal, "save result record", err)
	}

	s.publishContext(ctx, req.SessionID, req.UserID, result)

	s.logger.Info("ocr.extract.done",
		"job_id", jobID,
		"session_id", req.SessionID,
		"elapsed_s", elapsed,
		"needs_review", result.Meta.NeedsReview,
	)
	return ExtractResponse{JobID: jobID, Status: constants.JobStatusCompleted, Result: result}, nil
}

// runExtraction covers the model-facing middle of the pipeline so failures
// share one job-failing path.
func (s *Service) runExtraction(ctx context.Context, jobID uuid.UUID, scratch string, req ExtractRequest) (ocrexpense.Result, error) {
	fail := func(code, msg string, cause error) (ocrexpense.Result, error) {
		appErr := common.NewAppError(code, msg, cause)
		_ = s.store.FailJob(ctx, jobID, appErr.Error())
		return ocrexpense.Result{}, appErr
	}

	t0 := time.Now()
	imageBytes, err := s.preparer.Prepare(ctx, scratch, req.ContentType)
	if err != nil {
		return fail(common.CodeInternal, "image preparation", err)
	}
	s.logger.Info("ocr.prepare.ok", "job_id", jobID, "bytes", len(imageBytes),
		"elapsed_ms", time.Since(t0).Milliseconds())

	t1 := time.Now()
	raw, err := s.extractor.Extract(ctx, imageBytes, req.Hints)
	if err != nil {
		return fail(common.CodeInternal, "vision extraction", err)
	}
	s.logger.Info("ocr.vision.ok", "job_id", jobID, "elapsed_ms", time.Since(t1).Milliseconds())

	processed, err := s.post.PostProcess(raw, req.Hints)
	if err != nil {
		return fail(common.CodeMissingField, "post-processing", err)
	}

	if outcome := s.validator.Validate(processed); !outcome.Valid {
		// Post-processing is expected to make validation pass; reaching this
		// path means a logic bug or an unrecoverable extraction.
		s.logger.Error("ocr.schema_violation", "job_id", jobID, "errors", outcome.Errors)
		return fail(common.CodeSchemaViolation,
			"canonical result rejected: "+strings.Join(outcome.Errors, "; "), nil)
	}

	result, err := ocrexpense.DecodeResult(processed)
	if err != nil {
		return fail(common.CodeInternal, "decode canonical result", err)
	}
	return result, nil
}

// GetExpenseContext returns the most recent extraction for a session, if any.
func (s *Service) GetExpenseContext(ctx context.Context, sessionID uuid.UUID) (ocrexpense.Result, bool, error) {
	return s.store.LatestResultForSession(ctx, sessionID)
}

func (s *Service) validateFile(req ExtractRequest) error {
	if strings.TrimSpace(req.Filename) == "" {
		return common.NewAppError(common.CodeFileInvalid, "no filename provided", nil)
	}
	if len(req.Data) == 0 {
		return common.NewAppError(common.CodeFileInvalid, "empty upload", nil)
	}
	if int64(len(req.Data)) > s.cfg.MaxFileSize {
		return common.NewAppError(common.CodeFileInvalid,
			fmt.Sprintf("file size exceeds limit: %d bytes", s.cfg.MaxFileSize), nil)
	}
	if _, ok := constants.AllowedContentTypes[req.ContentType]; !ok {
		return common.NewAppError(common.CodeUnsupportedMediaType,
			fmt.Sprintf("unsupported media type: %s", req.ContentType), nil)
	}
	return nil
}

// saveScratch writes the upload under a job-scoped name in the upload dir.
func (s *Service) saveScratch(jobID uuid.UUID, req ExtractRequest) (string, error) {
	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(s.cfg.UploadDir, jobID.String()+strings.ToLower(filepath.Ext(req.Filename)))
	if err := os.WriteFile(path, req.Data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// publishContext saves the summary as a system message. Publication failures
// are logged, not fatal: the result is already persisted.
func (s *Service) publishContext(ctx context.Context, sessionID, userID uuid.UUID, result ocrexpense.Result) {
	metadata, err := json.Marshal(map[string]any{
		"ocr_context": true,
		"ocr_data":    result.ToMap(),
	})
	if err != nil {
		s.logger.Error("ocr.context_metadata_failed", "session_id", sessionID, "err", err)
		return
	}
	if err := s.publisher.PublishSystemMessage(ctx, sessionID, userID, BuildSummary(result), metadata); err != nil {
		s.logger.Error("ocr.context_publish_failed", "session_id", sessionID, "err", err)
	}
}

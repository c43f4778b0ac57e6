package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbot-vn/finbot/constants"
	"github.com/finbot-vn/finbot/internal/common"
	"github.com/finbot-vn/finbot/internal/ocrexpense"
)

type fakeStore struct {
	createErr     error
	processingErr error
	failMessages  []string
	completed     bool
	completedRes  ocrexpense.Result
	wordCount     int
	processing    bool

	latest      ocrexpense.Result
	latestFound bool
}

func (f *fakeStore) CreateJob(ctx context.Context, job JobRecord) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	return uuid.New(), nil
}

func (f *fakeStore) MarkProcessing(ctx context.Context, jobID uuid.UUID) error {
	if f.processingErr != nil {
		return f.processingErr
	}
	f.processing = true
	return nil
}

func (f *fakeStore) CompleteJob(ctx context.Context, jobID uuid.UUID, res ocrexpense.Result, processingSeconds float64, wordCount int) error {
	f.completed = true
	f.completedRes = res
	f.wordCount = wordCount
	return nil
}

func (f *fakeStore) FailJob(ctx context.Context, jobID uuid.UUID, message string) error {
	f.failMessages = append(f.failMessages, message)
	return nil
}

func (f *fakeStore) LatestResultForSession(ctx context.Context, sessionID uuid.UUID) (ocrexpense.Result, bool, error) {
	return f.latest, f.latestFound, nil
}

type fakePublisher struct {
	content  string
	metadata json.RawMessage
	err      error
	calls    int
}

func (f *fakePublisher) PublishSystemMessage(ctx context.Context, sessionID, userID uuid.UUID, content string, metadata json.RawMessage) error {
	f.calls++
	f.content = content
	f.metadata = metadata
	return f.err
}

type fakePreparer struct {
	err   error
	bytes []byte
}

func (f *fakePreparer) Prepare(ctx context.Context, path, contentType string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.bytes == nil {
		return []byte("jpeg"), nil
	}
	return f.bytes, nil
}

type fakeExtractor struct {
	raw map[string]any
	err error
}

func (f *fakeExtractor) Extract(ctx context.Context, imageBytes []byte, hints ocrexpense.Hints) (map[string]any, error) {
	return f.raw, f.err
}

func goodRaw() map[string]any {
	return map[string]any{
		"transaction_date": "2024-03-15",
		"amount":           map[string]any{"value": "45.000đ", "currency": "VND"},
		"category":         map[string]any{"code": "FNB", "name": "Ăn uống"},
		"items": []any{
			map[string]any{"name": "Cà phê", "qty": 2},
		},
	}
}

type fixture struct {
	svc       *Service
	store     *fakeStore
	publisher *fakePublisher
	dir       string
}

func newFixture(t *testing.T, preparer *fakePreparer, extractor *fakeExtractor) *fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := &fakeStore{}
	publisher := &fakePublisher{}
	dir := t.TempDir()
	svc := NewService(
		logger,
		Config{UploadDir: dir, MaxFileSize: 1 << 20},
		preparer,
		extractor,
		ocrexpense.NewPostProcessor("Asia/Ho_Chi_Minh", logger),
		ocrexpense.NewValidator(),
		store,
		publisher,
	)
	return &fixture{svc: svc, store: store, publisher: publisher, dir: dir}
}

func validRequest() ExtractRequest {
	return ExtractRequest{
		SessionID:   uuid.New(),
		UserID:      uuid.New(),
		Filename:    "receipt.jpg",
		ContentType: "image/jpeg",
		Data:        []byte("fake image bytes"),
	}
}

func scratchCount(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return len(entries)
}

func TestExtractExpenseSuccess(t *testing.T) {
	fx := newFixture(t, &fakePreparer{}, &fakeExtractor{raw: goodRaw()})

	resp, err := fx.svc.ExtractExpense(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, resp.JobID)
	assert.Equal(t, constants.JobStatusCompleted, resp.Status)
	assert.Equal(t, "2024-03-15", resp.Result.TransactionDate)
	assert.Equal(t, int64(45000), resp.Result.Amount.Value)
	assert.Equal(t, "VND", resp.Result.Amount.Currency)
	assert.Equal(t, "FNB", resp.Result.Category.Code)

	assert.True(t, fx.store.processing)
	assert.True(t, fx.store.completed)
	assert.Empty(t, fx.store.failMessages)

	// Context published with summary and machine-readable metadata.
	require.Equal(t, 1, fx.publisher.calls)
	assert.Contains(t, fx.publisher.content, "📄 OCR Result:")
	assert.Contains(t, fx.publisher.content, "💰 Amount: 45,000 VND")
	var meta map[string]any
	require.NoError(t, json.Unmarshal(fx.publisher.metadata, &meta))
	assert.Equal(t, true, meta["ocr_context"])

	// Scratch file removed.
	assert.Zero(t, scratchCount(t, fx.dir))
}

func TestExtractExpenseFileGate(t *testing.T) {
	fx := newFixture(t, &fakePreparer{}, &fakeExtractor{raw: goodRaw()})

	tests := []struct {
		name   string
		mutate func(*ExtractRequest)
		code   string
	}{
		{"empty filename", func(r *ExtractRequest) { r.Filename = "  " }, common.CodeFileInvalid},
		{"empty data", func(r *ExtractRequest) { r.Data = nil }, common.CodeFileInvalid},
		{"oversize", func(r *ExtractRequest) { r.Data = make([]byte, 2<<20) }, common.CodeFileInvalid},
		{"bad content type", func(r *ExtractRequest) { r.ContentType = "text/plain" }, common.CodeUnsupportedMediaType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			_, err := fx.svc.ExtractExpense(context.Background(), req)
			require.Error(t, err)
			assert.True(t, common.IsCode(err, tt.code), "got %v", err)
		})
	}
	// Rejected uploads never create jobs or scratch files.
	assert.False(t, fx.store.completed)
	assert.Zero(t, scratchCount(t, fx.dir))
}

func TestExtractExpenseVisionFailureFailsJob(t *testing.T) {
	fx := newFixture(t, &fakePreparer{}, &fakeExtractor{err: errors.New("model unavailable")})

	_, err := fx.svc.ExtractExpense(context.Background(), validRequest())
	require.Error(t, err)
	assert.True(t, common.IsCode(err, common.CodeInternal))
	require.Len(t, fx.store.failMessages, 1)
	assert.Contains(t, fx.store.failMessages[0], "vision extraction")
	assert.Zero(t, scratchCount(t, fx.dir))
}

func TestExtractExpensePrepareFailureFailsJob(t *testing.T) {
	fx := newFixture(t, &fakePreparer{err: errors.New("pdftoppm not found")}, &fakeExtractor{raw: goodRaw()})

	_, err := fx.svc.ExtractExpense(context.Background(), validRequest())
	require.Error(t, err)
	assert.True(t, common.IsCode(err, common.CodeInternal))
	require.Len(t, fx.store.failMessages, 1)
	assert.Contains(t, fx.store.failMessages[0], "image preparation")
	assert.Zero(t, scratchCount(t, fx.dir))
}

func TestExtractExpenseShapeGateFailure(t *testing.T) {
	fx := newFixture(t, &fakePreparer{}, &fakeExtractor{raw: map[string]any{}})

	_, err := fx.svc.ExtractExpense(context.Background(), validRequest())
	require.Error(t, err)
	assert.True(t, common.IsCode(err, common.CodeMissingField))
	require.Len(t, fx.store.failMessages, 1)
	assert.False(t, fx.store.completed)
	assert.Zero(t, scratchCount(t, fx.dir))
}

func TestExtractExpensePublishFailureIsNotFatal(t *testing.T) {
	fx := newFixture(t, &fakePreparer{}, &fakeExtractor{raw: goodRaw()})
	fx.publisher.err = errors.New("session gone")

	resp, err := fx.svc.ExtractExpense(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusCompleted, resp.Status)
	assert.True(t, fx.store.completed)
}

func TestExtractExpenseCreateJobFailure(t *testing.T) {
	fx := newFixture(t, &fakePreparer{}, &fakeExtractor{raw: goodRaw()})
	fx.store.createErr = errors.New("db down")

	_, err := fx.svc.ExtractExpense(context.Background(), validRequest())
	require.Error(t, err)
	assert.True(t, common.IsCode(err, common.CodeInternal))
	assert.Zero(t, scratchCount(t, fx.dir))
}

func TestExtractExpenseMarkProcessingFailureFailsJob(t *testing.T) {
	fx := newFixture(t, &fakePreparer{}, &fakeExtractor{raw: goodRaw()})
	fx.store.processingErr = errors.New("db down")

	_, err := fx.svc.ExtractExpense(context.Background(), validRequest())
	require.Error(t, err)
	assert.True(t, common.IsCode(err, common.CodeInternal))
	// The job must not be left stuck in PENDING.
	require.Len(t, fx.store.failMessages, 1)
	assert.Contains(t, fx.store.failMessages[0], "mark job processing")
	assert.False(t, fx.store.completed)
	assert.Zero(t, scratchCount(t, fx.dir))
}

func TestGetExpenseContext(t *testing.T) {
	fx := newFixture(t, &fakePreparer{}, &fakeExtractor{raw: goodRaw()})
	fx.store.latestFound = true
	fx.store.latest = ocrexpense.Result{TransactionDate: "2024-03-15"}

	res, found, err := fx.svc.GetExpenseContext(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "2024-03-15", res.TransactionDate)
}

func TestExtractExpenseRecordsWordCount(t *testing.T) {
	fx := newFixture(t, &fakePreparer{}, &fakeExtractor{raw: goodRaw()})

	_, err := fx.svc.ExtractExpense(context.Background(), validRequest())
	require.NoError(t, err)
	// "Ăn uống" + "Cà phê" = 4 words.
	assert.Equal(t, 4, fx.store.wordCount)
}

// Package async runs receipt extractions off a bounded work queue so folder
// ingestion never blocks the watcher goroutine.
package async

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/finbot-vn/finbot/internal/pipeline"
)

// ErrQueueFull is returned by Enqueue when the buffer is exhausted.
var ErrQueueFull = errors.New("async: queue full")

// Job is one queued extraction: a local file plus the conversation it
// belongs to.
type Job struct {
	Path        string
	ContentType string
	SessionID   uuid.UUID
	UserID      uuid.UUID
	SubmittedAt time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// ExtractQueue fans queued jobs out to a fixed pool of workers, each running
// the full extraction pipeline.
type ExtractQueue struct {
	svc     *pipeline.Service
	logger  *slog.Logger
	jobs    chan Job
	wg      sync.WaitGroup
	timeout time.Duration

	closeOnce sync.Once
}

type Option func(*options)

type options struct {
	workers        int
	queueSize      int
	processTimeout time.Duration
}

func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.queueSize = n
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.processTimeout = d
		}
	}
}

func NewExtractQueue(svc *pipeline.Service, logger *slog.Logger, opts ...Option) *ExtractQueue {
	if logger == nil {
		logger = slog.Default()
	}
	o := options{
		workers:        4,
		queueSize:      256,
		processTimeout: 3 * time.Minute,
	}
	for _, opt := range opts {
		opt(&o)
	}

	q := &ExtractQueue{
		svc:     svc,
		logger:  logger,
		jobs:    make(chan Job, o.queueSize),
		timeout: o.processTimeout,
	}
	for i := 0; i < o.workers; i++ {
		q.wg.Add(1)
		go q.worker(i)
	}
	return q
}

// Enqueue adds a job, dropping it with an error log when the queue is full
// rather than blocking the caller.
func (q *ExtractQueue) Enqueue(ctx context.Context, job Job) error {
	if job.SubmittedAt.IsZero() {
		job.SubmittedAt = time.Now()
	}
	select {
	case q.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		q.logger.Error("async.queue_full", "path", job.Path)
		return ErrQueueFull
	}
}

// Shutdown stops accepting work and waits for in-flight jobs, bounded by ctx.
func (q *ExtractQueue) Shutdown(ctx context.Context) {
	q.closeOnce.Do(func() { close(q.jobs) })
	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		q.logger.Warn("async.shutdown_timeout")
	}
}

func (q *ExtractQueue) worker(id int) {
	defer q.wg.Done()
	for job := range q.jobs {
		q.process(id, job)
	}
}

func (q *ExtractQueue) process(worker int, job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
	defer cancel()

	data, err := os.ReadFile(job.Path)
	if err != nil {
		q.logger.Error("async.read_failed", "worker", worker, "path", job.Path, "err", err)
		return
	}

	resp, err := q.svc.ExtractExpense(ctx, pipeline.ExtractRequest{
		SessionID:   job.SessionID,
		UserID:      job.UserID,
		Filename:    filepath.Base(job.Path),
		ContentType: job.ContentType,
		Data:        data,
	})
	if err != nil {
		q.logger.Error("async.extract_failed", "worker", worker, "path", job.Path, "err", err)
		return
	}
	q.logger.Info("async.extract_ok",
		"worker", worker,
		"path", job.Path,
		"job_id", resp.JobID,
		"queued_ms", time.Since(job.SubmittedAt).Milliseconds(),
	)
}

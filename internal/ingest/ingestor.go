package ingest

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/finbot-vn/finbot/constants"
	"github.com/finbot-vn/finbot/internal/async"
)

// Config ties a watched folder to the conversation its receipts belong to.
type Config struct {
	WatchDir    string
	SessionID   uuid.UUID
	UserID      uuid.UUID
	InitialScan bool
	Debounce    time.Duration
}

// Ingestor forwards discovered receipt files to the extraction queue.
type Ingestor struct {
	cfg    Config
	queue  async.Queue
	logger *slog.Logger
}

func NewIngestor(cfg Config, queue async.Queue, logger *slog.Logger) *Ingestor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Debounce == 0 {
		cfg.Debounce = 500 * time.Millisecond
	}
	return &Ingestor{cfg: cfg, queue: queue, logger: logger}
}

// Run watches the folder until ctx is cancelled, enqueueing each accepted
// file once per settle.
func (i *Ingestor) Run(ctx context.Context) error {
	events, errs, err := StartWatcher(ctx, WatchConfig{
		Roots:       []string{i.cfg.WatchDir},
		InitialScan: i.cfg.InitialScan,
		Debounce:    i.cfg.Debounce,
	}, i.logger)
	if err != nil {
		return err
	}

	i.logger.Info("ingest.watching", "dir", i.cfg.WatchDir, "session_id", i.cfg.SessionID)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case path, ok := <-events:
			if !ok {
				return nil
			}
			contentType := constants.ContentTypeForExt(filepath.Ext(path))
			if contentType == "" {
				continue
			}
			if err := i.queue.Enqueue(ctx, async.Job{
				Path:        path,
				ContentType: contentType,
				SessionID:   i.cfg.SessionID,
				UserID:      i.cfg.UserID,
			}); err != nil {
				i.logger.Warn("ingest.enqueue_failed", "path", path, "err", err)
			}
		case <-errs:
			// Already logged by the watcher; keep running.
		}
	}
}

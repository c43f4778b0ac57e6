// Command runocr runs one extraction end to end against a local receipt
// file, persisting into a throwaway SQLite database. Useful for trying out
// prompt or post-processing changes without a Postgres instance.
package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/finbot-vn/finbot/constants"
	"github.com/finbot-vn/finbot/internal/common"
	"github.com/finbot-vn/finbot/internal/imageprep"
	"github.com/finbot-vn/finbot/internal/ocrexpense"
	"github.com/finbot-vn/finbot/internal/pipeline"
	repo "github.com/finbot-vn/finbot/internal/repository"
	"github.com/finbot-vn/finbot/internal/vision/gemini"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runocr <receipt-file>")
		os.Exit(2)
	}
	path := os.Args[1]
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read file", "path", path, "error", err)
		os.Exit(1)
	}
	contentType := constants.ContentTypeForExt(filepath.Ext(path))
	if contentType == "" {
		logger.Error("unsupported file extension", "path", path)
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if cfg.Vision.APIKey == "" {
		logger.Error("missing GEMINI_API_KEY environment variable")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dbPath := os.Getenv("RUNOCR_DB")
	if dbPath == "" {
		dbPath = filepath.Join(os.TempDir(), "finbot-runocr.db")
	}
	entc, err := repo.OpenLite(dbPath, logger)
	if err != nil {
		logger.Error("open sqlite db", "path", dbPath, "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := entc.Close(); cerr != nil {
			logger.Error("close ent client", "error", cerr)
		}
	}()
	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("migrate sqlite schema", "error", err)
		os.Exit(1)
	}

	// Throwaway identity so the job rows satisfy their FKs.
	user, err := entc.User.Create().
		SetEmail("runocr@localhost").
		SetPasswordHash("-").
		Save(ctx)
	if err != nil {
		logger.Error("create local user", "error", err)
		os.Exit(1)
	}
	session, err := entc.ChatSession.Create().
		SetUserID(user.ID).
		Save(ctx)
	if err != nil {
		logger.Error("create local session", "error", err)
		os.Exit(1)
	}

	jobsRepo := repo.NewOcrJobRepository(entc, logger)
	messagesRepo := repo.NewMessageRepository(entc, logger)
	store := repo.NewPipelineStore(jobsRepo, messagesRepo)

	preparer := imageprep.NewJPEGPreparer(imageprep.Config{
		MaxDimension: cfg.OCR.MaxDimension,
		Pdftoppm:     cfg.OCR.PdftoppmPath,
		DPI:          cfg.OCR.RasterDPI,
	}, logger)
	extractor, err := gemini.NewClient(ctx, gemini.Config{
		Model:   cfg.Vision.Model,
		APIKey:  cfg.Vision.APIKey,
		BaseURL: cfg.Vision.BaseURL,
		Timeout: cfg.Vision.Timeout,
	}, logger)
	if err != nil {
		logger.Error("create vision client", "error", err)
		os.Exit(1)
	}

	svc := pipeline.NewService(
		logger,
		pipeline.Config{UploadDir: os.TempDir(), MaxFileSize: cfg.OCR.MaxFileSize},
		preparer,
		extractor,
		ocrexpense.NewPostProcessor(cfg.OCR.DefaultTimezone, logger),
		ocrexpense.NewValidator(),
		store,
		store,
	)

	start := time.Now()
	resp, err := svc.ExtractExpense(ctx, pipeline.ExtractRequest{
		SessionID:   session.ID,
		UserID:      user.ID,
		Filename:    filepath.Base(path),
		ContentType: contentType,
		Data:        data,
		Hints:       ocrexpense.Hints{Debug: true},
	})
	dur := time.Since(start)

	if err != nil {
		logger.Error("extraction failed", "error", err, "duration_ms", dur.Milliseconds())
		os.Exit(1)
	}

	logger.Info("extraction OK",
		"job_id", resp.JobID,
		"date", resp.Result.TransactionDate,
		"amount", resp.Result.Amount.Value,
		"category", resp.Result.Category.Code,
		"items", len(resp.Result.Items),
		"needs_review", resp.Result.Meta.NeedsReview,
		"duration_ms", dur.Milliseconds(),
	)
	os.Stdout.WriteString(pipeline.BuildSummary(resp.Result) + "\n")
}

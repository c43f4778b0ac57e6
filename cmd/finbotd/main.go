package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/google/uuid"

	finbotv1 "github.com/finbot-vn/finbot/gen/proto/finbot/v1"
	"github.com/finbot-vn/finbot/internal/async"
	"github.com/finbot-vn/finbot/internal/auth"
	"github.com/finbot-vn/finbot/internal/common"
	"github.com/finbot-vn/finbot/internal/export"
	"github.com/finbot-vn/finbot/internal/imageprep"
	"github.com/finbot-vn/finbot/internal/ingest"
	"github.com/finbot-vn/finbot/internal/ocrexpense"
	"github.com/finbot-vn/finbot/internal/pipeline"
	repo "github.com/finbot-vn/finbot/internal/repository"
	"github.com/finbot-vn/finbot/internal/server"
	"github.com/finbot-vn/finbot/internal/vision/gemini"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("missing DB_URL environment variable")
		os.Exit(1)
	}
	if cfg.Vision.APIKey == "" {
		logger.Error("missing GEMINI_API_KEY environment variable")
		os.Exit(1)
	}
	if cfg.Auth.JWTSecret == "" {
		logger.Error("missing JWT_SECRET environment variable")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	// Repositories
	usersRepo := repo.NewUserRepository(entc, logger)
	sessionsRepo := repo.NewSessionRepository(entc, logger)
	messagesRepo := repo.NewMessageRepository(entc, logger)
	jobsRepo := repo.NewOcrJobRepository(entc, logger)
	txRepo := repo.NewTransactionRepository(entc, logger)
	store := repo.NewPipelineStore(jobsRepo, messagesRepo)

	// Extraction pipeline
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
		logger.Error("failed to create vision client", "error", err)
		os.Exit(1)
	}

	ocrService := pipeline.NewService(
		logger,
		pipeline.Config{
			UploadDir:   cfg.OCR.UploadDir,
			MaxFileSize: cfg.OCR.MaxFileSize,
		},
		preparer,
		extractor,
		ocrexpense.NewPostProcessor(cfg.OCR.DefaultTimezone, logger),
		ocrexpense.NewValidator(),
		store,
		store,
	)

	exportService := export.NewService(txRepo, logger)
	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)

	// gRPC server
	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(
		server.RequestIDInterceptor(logger),
		server.AuthInterceptor(tokens),
	))

	finbotv1.RegisterAuthServiceServer(grpcServer, server.NewAuthServer(usersRepo, tokens, logger))
	finbotv1.RegisterSessionsServiceServer(grpcServer, server.NewSessionsServer(sessionsRepo, logger))
	finbotv1.RegisterOcrServiceServer(grpcServer, server.NewOcrServer(ocrService, sessionsRepo, logger))
	finbotv1.RegisterTransactionsServiceServer(grpcServer,
		server.NewTransactionsServer(txRepo, ocrService, exportService, logger))

	// Optional watch-folder ingestion
	queue := async.NewExtractQueue(ocrService, logger,
		async.WithWorkers(4),
		async.WithQueueSize(256),
		async.WithProcessTimeout(3*time.Minute),
	)
	if cfg.OCR.WatchDir != "" {
		sessionID, serr := uuid.Parse(cfg.OCR.WatchSession)
		userID, uerr := uuid.Parse(cfg.OCR.WatchUser)
		if serr != nil || uerr != nil {
			logger.Error("OCR_WATCH_SESSION and OCR_WATCH_USER must be UUIDs when OCR_WATCH_DIR is set")
			os.Exit(1)
		}
		ingestor := ingest.NewIngestor(ingest.Config{
			WatchDir:  cfg.OCR.WatchDir,
			SessionID: sessionID,
			UserID:    userID,
		}, queue, logger)
		go func() {
			if err := ingestor.Run(ctx); err != nil && ctx.Err() == nil {
				logger.Error("ingest stopped", "error", err)
			}
		}()
	}

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("finbotd listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	queue.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
}

package server

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	finbotv1 "github.com/finbot-vn/finbot/gen/proto/finbot/v1"
	"github.com/finbot-vn/finbot/internal/common"
	"github.com/finbot-vn/finbot/internal/ocrexpense"
	"github.com/finbot-vn/finbot/internal/pipeline"
	"github.com/finbot-vn/finbot/internal/repository"
)

type OcrServer struct {
	finbotv1.UnimplementedOcrServiceServer
	svc      *pipeline.Service
	sessions repository.SessionRepository
	logger   *slog.Logger
}

func NewOcrServer(svc *pipeline.Service, sessions repository.SessionRepository, logger *slog.Logger) *OcrServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &OcrServer{svc: svc, sessions: sessions, logger: logger}
}

func (s *OcrServer) ExtractExpense(ctx context.Context, req *finbotv1.ExtractExpenseRequest) (*finbotv1.ExtractExpenseResponse, error) {
	sessionID, err := uuid.Parse(req.GetSessionId())
	if err != nil {
		return nil, common.InvalidArgumentError("session_id must be a UUID")
	}
	userID, err := uuid.Parse(req.GetUserId())
	if err != nil {
		return nil, common.InvalidArgumentError("user_id must be a UUID")
	}
	if ok, err := s.sessions.Exists(ctx, sessionID); err != nil {
		s.logger.Error("ocr.session_lookup_failed", "session_id", sessionID, "err", err)
		return nil, common.InternalError("session lookup failed")
	} else if !ok {
		return nil, common.NotFoundError("session not found")
	}

	ctx = common.WithSessionID(ctx, sessionID.String())
	resp, err := s.svc.ExtractExpense(ctx, pipeline.ExtractRequest{
		SessionID:   sessionID,
		UserID:      userID,
		Filename:    req.GetFilename(),
		ContentType: req.GetContentType(),
		Data:        req.GetData(),
		Hints:       hintsFromPB(req.GetHints()),
	})
	if err != nil {
		return nil, common.ToStatusError(err)
	}

	return &finbotv1.ExtractExpenseResponse{
		JobId:   resp.JobID.String(),
		Status:  string(resp.Status),
		Expense: expenseToPB(resp.Result),
	}, nil
}

func (s *OcrServer) GetExpenseContext(ctx context.Context, req *finbotv1.GetExpenseContextRequest) (*finbotv1.GetExpenseContextResponse, error) {
	sessionID, err := uuid.Parse(req.GetSessionId())
	if err != nil {
		return nil, common.InvalidArgumentError("session_id must be a UUID")
	}

	result, found, err := s.svc.GetExpenseContext(ctx, sessionID)
	if err != nil {
		s.logger.Error("ocr.context_lookup_failed", "session_id", sessionID, "err", err)
		return nil, common.InternalError("context lookup failed")
	}
	if !found {
		return &finbotv1.GetExpenseContextResponse{Found: false}, nil
	}
	return &finbotv1.GetExpenseContextResponse{
		Found:   true,
		Expense: expenseToPB(result),
	}, nil
}

func hintsFromPB(h *finbotv1.ExtractionHints) ocrexpense.Hints {
	if h == nil {
		return ocrexpense.Hints{}
	}
	return ocrexpense.Hints{
		Language:      h.GetLanguage(),
		Timezone:      h.GetTimezone(),
		ItemsExpected: h.GetItemsExpected(),
		Debug:         h.GetDebug(),
	}
}

func expenseToPB(r ocrexpense.Result) *finbotv1.Expense {
	items := make([]*finbotv1.ExpenseItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, &finbotv1.ExpenseItem{
			Name: it.Name,
			Qty:  int32(it.Qty),
		})
	}
	return &finbotv1.Expense{
		TransactionDate: r.TransactionDate,
		Amount: &finbotv1.Money{
			Value:    r.Amount.Value,
			Currency: r.Amount.Currency,
		},
		Category: &finbotv1.ExpenseCategory{
			Code: r.Category.Code,
			Name: r.Category.Name,
		},
		Items: items,
		Meta: &finbotv1.ExpenseMeta{
			NeedsReview: r.Meta.NeedsReview,
			Warnings:    r.Meta.Warnings,
		},
	}
}

package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finbot-vn/finbot/gen/ent"
	finbotv1 "github.com/finbot-vn/finbot/gen/proto/finbot/v1"
	"github.com/finbot-vn/finbot/internal/common"
	"github.com/finbot-vn/finbot/internal/export"
	"github.com/finbot-vn/finbot/internal/pipeline"
	"github.com/finbot-vn/finbot/internal/repository"
	"github.com/finbot-vn/finbot/internal/utils"
)

type TransactionsServer struct {
	finbotv1.UnimplementedTransactionsServiceServer
	transactions repository.TransactionRepository
	ocr          *pipeline.Service
	exporter     *export.Service
	logger       *slog.Logger
}

func NewTransactionsServer(
	transactions repository.TransactionRepository,
	ocr *pipeline.Service,
	exporter *export.Service,
	logger *slog.Logger,
) *TransactionsServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &TransactionsServer{
		transactions: transactions,
		ocr:          ocr,
		exporter:     exporter,
		logger:       logger,
	}
}

func (s *TransactionsServer) ConfirmExpense(ctx context.Context, req *finbotv1.ConfirmExpenseRequest) (*finbotv1.ConfirmExpenseResponse, error) {
	sessionID, err := uuid.Parse(req.GetSessionId())
	if err != nil {
		return nil, common.InvalidArgumentError("session_id must be a UUID")
	}
	userID, err := uuid.Parse(req.GetUserId())
	if err != nil {
		return nil, common.InvalidArgumentError("user_id must be a UUID")
	}

	result, found, err := s.ocr.GetExpenseContext(ctx, sessionID)
	if err != nil {
		s.logger.Error("tx.confirm.context_failed", "session_id", sessionID, "err", err)
		return nil, common.InternalError("context lookup failed")
	}
	if !found {
		return nil, common.NotFoundError("no extracted expense in session")
	}

	var note *string
	if n := strings.TrimSpace(req.GetNote()); n != "" {
		note = &n
	}
	tx, err := s.transactions.CreateFromExpense(ctx, userID, result, note)
	if err != nil {
		s.logger.Error("tx.confirm.create_failed", "user_id", userID, "err", err)
		return nil, common.InternalError("transaction create failed")
	}

	return &finbotv1.ConfirmExpenseResponse{Transaction: transactionToPB(tx)}, nil
}

func (s *TransactionsServer) ListTransactions(ctx context.Context, req *finbotv1.ListTransactionsRequest) (*finbotv1.ListTransactionsResponse, error) {
	userID, from, to, err := s.parseWindow(req.GetUserId(), req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	rows, err := s.transactions.List(ctx, userID, from, to)
	if err != nil {
		s.logger.Error("tx.list.failed", "user_id", userID, "err", err)
		return nil, common.InternalError("list transactions failed")
	}

	out := make([]*finbotv1.Transaction, 0, len(rows))
	for _, tx := range rows {
		out = append(out, transactionToPB(tx))
	}
	return &finbotv1.ListTransactionsResponse{Transactions: out}, nil
}

func (s *TransactionsServer) ExportTransactions(ctx context.Context, req *finbotv1.ExportTransactionsRequest) (*finbotv1.ExportTransactionsResponse, error) {
	userID, from, to, err := s.parseWindow(req.GetUserId(), req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	xlsx, err := s.exporter.ExportTransactionsXLSX(ctx, userID, from, to)
	if err != nil {
		s.logger.Error("tx.export.failed", "user_id", userID, "err", err)
		return nil, common.InternalError("export failed")
	}
	return &finbotv1.ExportTransactionsResponse{Xlsx: xlsx}, nil
}

func (s *TransactionsServer) parseWindow(rawUser, fromDate, toDate string) (uuid.UUID, *time.Time, *time.Time, error) {
	userID, err := uuid.Parse(rawUser)
	if err != nil {
		return uuid.Nil, nil, nil, common.InvalidArgumentError("user_id must be a UUID")
	}
	parse := func(s, name string) (*time.Time, error) {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, nil
		}
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, common.InvalidArgumentErrorf("%s must be YYYY-MM-DD", name)
		}
		return &t, nil
	}
	from, err := parse(fromDate, "from_date")
	if err != nil {
		return uuid.Nil, nil, nil, err
	}
	to, err := parse(toDate, "to_date")
	if err != nil {
		return uuid.Nil, nil, nil, err
	}
	return userID, from, to, nil
}

func transactionToPB(tx *ent.Transaction) *finbotv1.Transaction {
	return &finbotv1.Transaction{
		Id:           tx.ID.String(),
		UserId:       tx.UserID.String(),
		TxDate:       tx.TxDate.Format("2006-01-02"),
		Amount:       tx.Amount,
		Currency:     tx.Currency,
		CategoryCode: tx.CategoryCode,
		CategoryName: tx.CategoryName,
		Note:         utils.StrOrEmpty(tx.Note),
		CreatedAt:    tx.CreatedAt.Format(time.RFC3339Nano),
	}
}

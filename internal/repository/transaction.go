package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finbot-vn/finbot/gen/ent"
	"github.com/finbot-vn/finbot/gen/ent/transaction"
	"github.com/finbot-vn/finbot/internal/ocrexpense"
	"github.com/finbot-vn/finbot/internal/utils"
)

type TransactionRepository interface {
	CreateFromExpense(ctx context.Context, userID uuid.UUID, res ocrexpense.Result, note *string) (*ent.Transaction, error)
	List(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]*ent.Transaction, error)
}

type transactionRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewTransactionRepository(entc *ent.Client, log *slog.Logger) TransactionRepository {
	return &transactionRepo{ent: entc, log: log}
}

// CreateFromExpense records a ledger row from a canonical expense result.
func (r *transactionRepo) CreateFromExpense(ctx context.Context, userID uuid.UUID, res ocrexpense.Result, note *string) (*ent.Transaction, error) {
	txDate, err := utils.ParseYMD(res.TransactionDate)
	if err != nil {
		return nil, err
	}
	create := r.ent.Transaction.
		Create().
		SetUserID(userID).
		SetTxDate(txDate).
		SetAmount(res.Amount.Value).
		SetCurrency(res.Amount.Currency).
		SetCategoryCode(res.Category.Code).
		SetCategoryName(res.Category.Name)
	if note != nil {
		create = create.SetNote(*note)
	}
	tx, err := create.Save(ctx)
	if err != nil {
		r.log.Error("transaction create failed", "user_id", userID, "err", err)
		return nil, err
	}
	r.log.Info("transaction created", "transaction_id", tx.ID, "user_id", userID,
		"amount", res.Amount.Value, "category", res.Category.Code)
	return tx, nil
}

func (r *transactionRepo) List(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]*ent.Transaction, error) {
	q := r.ent.Transaction.
		Query().
		Where(transaction.UserID(userID))
	if from != nil {
		q = q.Where(transaction.TxDateGTE(*from))
	}
	if to != nil {
		q = q.Where(transaction.TxDateLTE(*to))
	}
	return q.Order(ent.Desc(transaction.FieldTxDate)).All(ctx)
}

package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finbot-vn/finbot/gen/ent"
)

type SessionRepository interface {
	Create(ctx context.Context, userID uuid.UUID, title *string) (*ent.ChatSession, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type sessionRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewSessionRepository(entc *ent.Client, log *slog.Logger) SessionRepository {
	return &sessionRepo{ent: entc, log: log}
}

func (r *sessionRepo) Create(ctx context.Context, userID uuid.UUID, title *string) (*ent.ChatSession, error) {
	create := r.ent.ChatSession.Create().SetUserID(userID)
	if title != nil {
		create = create.SetTitle(*title)
	}
	s, err := create.Save(ctx)
	if err != nil {
		r.log.Error("session create failed", "user_id", userID, "err", err)
		return nil, err
	}
	return s, nil
}

func (r *sessionRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	_, err := r.ent.ChatSession.Get(ctx, id)
	if ent.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

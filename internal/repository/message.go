package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finbot-vn/finbot/gen/ent"
	"github.com/finbot-vn/finbot/gen/ent/message"
)

type MessageRepository interface {
	Save(ctx context.Context, sessionID, userID uuid.UUID, role, content string, metadata json.RawMessage) (*ent.Message, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID, limit int) ([]*ent.Message, error)
}

type messageRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewMessageRepository(entc *ent.Client, log *slog.Logger) MessageRepository {
	return &messageRepo{ent: entc, log: log}
}

func (r *messageRepo) Save(ctx context.Context, sessionID, userID uuid.UUID, role, content string, metadata json.RawMessage) (*ent.Message, error) {
	msg, err := r.ent.Message.
		Create().
		SetSessionID(sessionID).
		SetUserID(userID).
		SetRole(role).
		SetContent(content).
		SetMetadata(metadata).
		Save(ctx)
	if err != nil {
		r.log.Error("message save failed", "session_id", sessionID, "role", role, "err", err)
		return nil, err
	}
	return msg, nil
}

func (r *messageRepo) ListBySession(ctx context.Context, sessionID uuid.UUID, limit int) ([]*ent.Message, error) {
	q := r.ent.Message.
		Query().
		Where(message.SessionID(sessionID)).
		Order(ent.Asc(message.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	return q.All(ctx)
}

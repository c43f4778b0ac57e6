package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	finbotv1 "github.com/finbot-vn/finbot/gen/proto/finbot/v1"
	"github.com/finbot-vn/finbot/internal/common"
	"github.com/finbot-vn/finbot/internal/repository"
)

type SessionsServer struct {
	finbotv1.UnimplementedSessionsServiceServer
	sessions repository.SessionRepository
	logger   *slog.Logger
}

func NewSessionsServer(sessions repository.SessionRepository, logger *slog.Logger) *SessionsServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionsServer{sessions: sessions, logger: logger}
}

func (s *SessionsServer) CreateSession(ctx context.Context, req *finbotv1.CreateSessionRequest) (*finbotv1.CreateSessionResponse, error) {
	userID, err := uuid.Parse(req.GetUserId())
	if err != nil {
		return nil, common.InvalidArgumentError("user_id must be a UUID")
	}

	var title *string
	if t := strings.TrimSpace(req.GetTitle()); t != "" {
		title = &t
	}

	sess, err := s.sessions.Create(ctx, userID, title)
	if err != nil {
		s.logger.Error("session.create.failed", "user_id", userID, "err", err)
		return nil, common.InternalError("failed to create session")
	}

	s.logger.Info("session.create.ok", "session_id", sess.ID, "user_id", userID)
	return &finbotv1.CreateSessionResponse{
		SessionId: sess.ID.String(),
		CreatedAt: sess.CreatedAt.Format(time.RFC3339Nano),
	}, nil
}

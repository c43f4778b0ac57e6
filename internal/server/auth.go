package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/finbot-vn/finbot/gen/ent"
	finbotv1 "github.com/finbot-vn/finbot/gen/proto/finbot/v1"
	"github.com/finbot-vn/finbot/internal/auth"
	"github.com/finbot-vn/finbot/internal/common"
	"github.com/finbot-vn/finbot/internal/repository"
)

type AuthServer struct {
	finbotv1.UnimplementedAuthServiceServer
	users  repository.UserRepository
	tokens *auth.TokenIssuer
	logger *slog.Logger
}

func NewAuthServer(users repository.UserRepository, tokens *auth.TokenIssuer, logger *slog.Logger) *AuthServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthServer{users: users, tokens: tokens, logger: logger}
}

func (s *AuthServer) Register(ctx context.Context, req *finbotv1.RegisterRequest) (*finbotv1.RegisterResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.GetEmail()))
	if email == "" {
		return nil, common.InvalidArgumentError("email is required")
	}
	if len(req.GetPassword()) < 8 {
		return nil, common.InvalidArgumentError("password must be at least 8 characters")
	}

	hash, err := auth.HashPassword(req.GetPassword())
	if err != nil {
		s.logger.Error("auth.register.hash_failed", "err", err)
		return nil, common.InternalError("registration failed")
	}

	u, err := s.users.Create(ctx, email, hash, req.GetDisplayName())
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, common.InvalidArgumentError("email is already registered")
		}
		s.logger.Error("auth.register.failed", "email", email, "err", err)
		return nil, common.InternalError("registration failed")
	}

	s.logger.Info("auth.register.ok", "user_id", u.ID, "email", email)
	return &finbotv1.RegisterResponse{
		UserId: u.ID.String(),
		Email:  u.Email,
	}, nil
}

func (s *AuthServer) Login(ctx context.Context, req *finbotv1.LoginRequest) (*finbotv1.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.GetEmail()))
	if email == "" || req.GetPassword() == "" {
		return nil, common.InvalidArgumentError("email and password are required")
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.InvalidArgumentError("invalid credentials")
		}
		s.logger.Error("auth.login.lookup_failed", "email", email, "err", err)
		return nil, common.InternalError("login failed")
	}
	if !auth.VerifyPassword(u.PasswordHash, req.GetPassword()) {
		return nil, common.InvalidArgumentError("invalid credentials")
	}

	token, err := s.tokens.Issue(u.ID, u.Email)
	if err != nil {
		s.logger.Error("auth.login.token_failed", "user_id", u.ID, "err", err)
		return nil, common.InternalError("login failed")
	}

	s.logger.Info("auth.login.ok", "user_id", u.ID)
	return &finbotv1.LoginResponse{
		AccessToken: token,
		UserId:      u.ID.String(),
	}, nil
}

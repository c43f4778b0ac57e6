package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finbot-vn/finbot/gen/ent"
	"github.com/finbot-vn/finbot/gen/ent/user"
)

type UserRepository interface {
	Create(ctx context.Context, email, passwordHash, displayName string) (*ent.User, error)
	GetByEmail(ctx context.Context, email string) (*ent.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.User, error)
}

type userRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewUserRepository(entc *ent.Client, log *slog.Logger) UserRepository {
	return &userRepo{ent: entc, log: log}
}

func (r *userRepo) Create(ctx context.Context, email, passwordHash, displayName string) (*ent.User, error) {
	create := r.ent.User.
		Create().
		SetEmail(email).
		SetPasswordHash(passwordHash)
	if displayName != "" {
		create = create.SetDisplayName(displayName)
	}
	u, err := create.Save(ctx)
	if err != nil {
		r.log.Error("user create failed", "email", email, "err", err)
		return nil, err
	}
	r.log.Info("user created", "user_id", u.ID)
	return u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*ent.User, error) {
	return r.ent.User.Query().Where(user.Email(email)).Only(ctx)
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.User, error) {
	return r.ent.User.Get(ctx, id)
}

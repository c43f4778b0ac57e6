package server

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/finbot-vn/finbot/internal/auth"
	"github.com/finbot-vn/finbot/internal/common"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRequestIDInterceptorTagsContext(t *testing.T) {
	interceptor := RequestIDInterceptor(discardLogger())

	var seen string
	_, err := interceptor(context.Background(), nil,
		&grpc.UnaryServerInfo{FullMethod: "/finbot.v1.OcrService/ExtractExpense"},
		func(ctx context.Context, req any) (any, error) {
			seen = common.RequestIDFromContext(ctx)
			return nil, nil
		})
	require.NoError(t, err)
	require.NotEmpty(t, seen)
	_, err = uuid.Parse(seen)
	assert.NoError(t, err)
}

func TestAuthInterceptor(t *testing.T) {
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	userID := uuid.New()
	token, err := tokens.Issue(userID, "user@example.com")
	require.NoError(t, err)

	interceptor := AuthInterceptor(tokens)
	call := func(ctx context.Context, method string) (string, error) {
		var gotUser string
		_, err := interceptor(ctx, nil,
			&grpc.UnaryServerInfo{FullMethod: method},
			func(ctx context.Context, req any) (any, error) {
				gotUser = common.UserIDFromContext(ctx)
				return nil, nil
			})
		return gotUser, err
	}

	t.Run("valid token", func(t *testing.T) {
		ctx := metadata.NewIncomingContext(context.Background(),
			metadata.Pairs("authorization", "Bearer "+token))
		gotUser, err := call(ctx, "/finbot.v1.OcrService/ExtractExpense")
		require.NoError(t, err)
		assert.Equal(t, userID.String(), gotUser)
	})

	t.Run("missing header", func(t *testing.T) {
		_, err := call(context.Background(), "/finbot.v1.OcrService/ExtractExpense")
		require.Error(t, err)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("wrong scheme", func(t *testing.T) {
		ctx := metadata.NewIncomingContext(context.Background(),
			metadata.Pairs("authorization", "Basic abc"))
		_, err := call(ctx, "/finbot.v1.OcrService/ExtractExpense")
		require.Error(t, err)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("bad token", func(t *testing.T) {
		ctx := metadata.NewIncomingContext(context.Background(),
			metadata.Pairs("authorization", "Bearer not-a-jwt"))
		_, err := call(ctx, "/finbot.v1.OcrService/ExtractExpense")
		require.Error(t, err)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("login is open", func(t *testing.T) {
		_, err := call(context.Background(), "/finbot.v1.AuthService/Login")
		assert.NoError(t, err)
	})

	t.Run("health passes through", func(t *testing.T) {
		_, err := call(context.Background(), "/grpc.health.v1.Health/Check")
		assert.NoError(t, err)
	})
}

package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/finbot-vn/finbot/internal/auth"
	"github.com/finbot-vn/finbot/internal/common"
)

// RequestIDInterceptor tags every call with a request ID so log lines from a
// single RPC can be correlated.
func RequestIDInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		requestID := uuid.NewString()
		ctx = common.WithRequestID(ctx, requestID)
		resp, err := handler(ctx, req)
		if err != nil {
			logger.Warn("rpc.failed", "method", info.FullMethod, "request_id", requestID, "err", err)
		}
		return resp, err
	}
}

// Methods reachable without a bearer token.
var openMethods = map[string]struct{}{
	"/finbot.v1.AuthService/Register": {},
	"/finbot.v1.AuthService/Login":    {},
}

// AuthInterceptor verifies the bearer token on authenticated methods and
// stores the caller's user ID in the context. Health and reflection traffic
// is let through untouched.
func AuthInterceptor(tokens *auth.TokenIssuer) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if _, open := openMethods[info.FullMethod]; open || !strings.HasPrefix(info.FullMethod, "/finbot.v1.") {
			return handler(ctx, req)
		}

		token, err := bearerToken(ctx)
		if err != nil {
			return nil, err
		}
		userID, _, err := tokens.Verify(token)
		if err != nil {
			return nil, common.UnauthenticatedError("invalid or expired token")
		}
		return handler(common.WithUserID(ctx, userID.String()), req)
	}
}

func bearerToken(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", common.UnauthenticatedError("missing request metadata")
	}
	values := md.Get("authorization")
	if len(values) == 0 {
		return "", common.UnauthenticatedError("missing authorization header")
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(values[0], prefix) {
		return "", common.UnauthenticatedError("authorization header must use the Bearer scheme")
	}
	return strings.TrimPrefix(values[0], prefix), nil
}

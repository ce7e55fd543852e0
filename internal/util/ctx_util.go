package util

import (
	"context"

	"github.com/RoyceAzure/lab/bookshop/internal/constants"
)

func WithSessionUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, constants.SessionUserIDKey, userID)
}

// GetSessionUserIDFromContext 沒有登入 session 時回傳 0, false
func GetSessionUserIDFromContext(ctx context.Context) (int, bool) {
	v, ok := ctx.Value(constants.SessionUserIDKey).(int)
	if !ok || v <= 0 {
		return 0, false
	}
	return v, true
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, constants.RequestIDKey, requestID)
}

func GetRequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(constants.RequestIDKey).(string); ok {
		return v
	}
	return "unknown"
}

package httpapi

import (
	"context"

	"github.com/riskibarqy/league-admin/internal/platform/logging"
)

type contextKey string

const requestIDContextKey contextKey = "request_id"

// withRequestID also binds the id to every context-aware log line written
// while serving the request.
func withRequestID(ctx context.Context, id string) context.Context {
	ctx = logging.ContextWith(ctx, "request_id", id)
	return context.WithValue(ctx, requestIDContextKey, id)
}

// RequestIDFromContext returns the id assigned by the RequestID middleware.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey).(string)
	return id
}

package reqctx

import (
	"context"
	"time"
)

// Context key type
type contextKey string

const requestIDKey contextKey = "request_id"
const receivedAtKey contextKey = "received_at"

// SetRequestID adds the request ID to the request context
func SetRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// GetRequestID retrieves the request ID from the request context
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// SetReceivedAt records when the request arrived
func SetReceivedAt(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, receivedAtKey, t)
}

// GetReceivedAt retrieves the arrival time, falling back to now when unset
func GetReceivedAt(ctx context.Context) time.Time {
	if t, ok := ctx.Value(receivedAtKey).(time.Time); ok {
		return t
	}
	return time.Now()
}

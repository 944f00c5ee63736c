// Package context carries request-scoped values between the delivery layer
// and the use cases: the request ID, the request-scoped logger, and the
// authenticated user, if any.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey types the keys this package stores so they cannot collide with
// values other packages put on the same context.
type ContextKey string

const (
	// KeyRequestID keys the per-request correlation ID.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger keys the logger carrying the request's attributes.
	KeyLogger ContextKey = "logger"

	// KeyUserID keys the authenticated user's ID.
	KeyUserID ContextKey = "user_id"

	// HeaderXRequestID is the response header echoing the request ID back
	// to the client.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the request ID stored on the echo context, minting a
// fresh one for requests that arrived without it.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID stores the request ID on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// WithRequestID returns a context carrying the request ID, so it survives
// past the echo context into the use cases.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// WithLogger returns a context carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, or the fallback when
// the context never passed through the logging middleware.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithUserID returns a context carrying the authenticated user's ID.
// The optional-auth middleware leaves the context untouched for anonymous
// visitors.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, KeyUserID, userID)
}

// GetUserID extracts the authenticated user's ID from the context. The
// boolean reports whether a user is logged in; wishlist and profile flows
// use it to degrade to their anonymous behavior instead of failing.
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(KeyUserID).(uuid.UUID)

	return id, ok
}

// Package ctxutil carries per-request values between the HTTP middleware and
// the services: the owner resolved by the session gate and the request id.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type (
	userIDKey    struct{}
	requestIDKey struct{}
)

// WithUserID marks ctx as authenticated for the given owner.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserIDFromCtx returns the authenticated owner. A missing value and
// uuid.Nil both report false, so services fail closed.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, _ := ctx.Value(userIDKey{}).(uuid.UUID)
	return id, id != uuid.Nil
}

// WithRequestID attaches the X-Request-ID of the current request.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns the request id, or "".
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

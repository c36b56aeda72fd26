package model

import (
	"context"

	"github.com/google/uuid"
)

// ContextManager moves the authenticated user id through request contexts.
// Handlers read it once and pass it explicitly into services.
type ContextManager interface {
	SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context
	GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool)
}

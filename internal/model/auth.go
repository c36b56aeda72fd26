package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Registration is the input of the register flow.
type Registration struct {
	Name     string
	Email    string
	Password string
}

// PasswordResetCompletion is the input of the second password reset step.
type PasswordResetCompletion struct {
	UserID      uuid.UUID
	Token       string
	NewPassword string
}

// PasswordResetTicket is the result of starting a password reset. The token
// is handed to a ResetNotifier for out-of-band delivery.
type PasswordResetTicket struct {
	UserID    uuid.UUID
	Email     string
	Token     string
	ExpiresAt time.Time
}

// ResetNotifier delivers password reset tickets to their owners.
type ResetNotifier interface {
	Deliver(ctx context.Context, ticket PasswordResetTicket) error
}

// Package notify hands password reset tickets to whatever delivers them to
// users. The service never sends mail itself.
package notify

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/dtroode/authkeeper/internal/logger"
	"github.com/dtroode/authkeeper/internal/model"
)

var (
	_ model.ResetNotifier = (*Stream)(nil)
	_ model.ResetNotifier = (*Discard)(nil)
)

// Stream appends tickets to a Redis stream. A mail worker reads the stream
// with a consumer group and sends the token to the user.
type Stream struct {
	redis  redis.UniversalClient
	stream string
	maxLen int64
}

// NewStream creates a Stream notifier. maxLen caps the stream length
// approximately; zero leaves it unbounded.
func NewStream(client redis.UniversalClient, stream string, maxLen int64) *Stream {
	return &Stream{redis: client, stream: stream, maxLen: maxLen}
}

// Deliver appends one entry with the user id, email, token and expiry.
func (s *Stream) Deliver(ctx context.Context, ticket model.PasswordResetTicket) error {
	args := &redis.XAddArgs{
		Stream: s.stream,
		Values: map[string]any{
			"user_id":    ticket.UserID.String(),
			"email":      ticket.Email,
			"token":      ticket.Token,
			"expires_at": strconv.FormatInt(ticket.ExpiresAt.Unix(), 10),
		},
	}
	if s.maxLen > 0 {
		args.MaxLen = s.maxLen
		args.Approx = true
	}

	if err := s.redis.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("%w: xadd: %v", model.ErrStorageUnavailable, err)
	}
	return nil
}

// Discard drops tickets after logging that one was issued. The token is
// never logged.
type Discard struct {
	logger *logger.Logger
}

// NewDiscard creates a Discard notifier.
func NewDiscard(logger *logger.Logger) *Discard {
	return &Discard{logger: logger}
}

func (d *Discard) Deliver(_ context.Context, ticket model.PasswordResetTicket) error {
	d.logger.Warn("Notifier: password reset ticket dropped, no delivery backend configured",
		"user_id", ticket.UserID,
		"expires_at", ticket.ExpiresAt)
	return nil
}

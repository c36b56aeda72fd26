package notify

import (
	"bytes"
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/authkeeper/internal/logger"
	"github.com/dtroode/authkeeper/internal/model"
)

func TestStream_Deliver(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	n := NewStream(rdb, "authkeeper:password-resets", 0)
	ticket := model.PasswordResetTicket{
		UserID:    uuid.New(),
		Email:     "ann@x.com",
		Token:     "reset-secret",
		ExpiresAt: time.Unix(1_700_003_600, 0),
	}

	require.NoError(t, n.Deliver(ctx, ticket))

	entries, err := rdb.XRange(ctx, "authkeeper:password-resets", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, map[string]any{
		"user_id":    ticket.UserID.String(),
		"email":      "ann@x.com",
		"token":      "reset-secret",
		"expires_at": strconv.FormatInt(ticket.ExpiresAt.Unix(), 10),
	}, entries[0].Values)
}

func TestStream_Deliver_Unavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })
	mr.Close()

	err := NewStream(rdb, "resets", 0).Deliver(context.Background(), model.PasswordResetTicket{UserID: uuid.New()})
	assert.ErrorIs(t, err, model.ErrStorageUnavailable)
}

func TestDiscard_DoesNotLogToken(t *testing.T) {
	var buf bytes.Buffer
	n := NewDiscard(logger.NewWithFormat(&buf, 0, "json"))

	err := n.Deliver(context.Background(), model.PasswordResetTicket{UserID: uuid.New(), Token: "reset-secret"})
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "reset-secret")
	assert.Contains(t, buf.String(), "password reset ticket dropped")
}

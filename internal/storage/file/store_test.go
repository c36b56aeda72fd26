package file

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/authkeeper/internal/model"
	"github.com/dtroode/authkeeper/internal/storage"
	"github.com/dtroode/authkeeper/internal/storage/storagetest"
)

func TestStore_Contract(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storagetest.Harness {
		clock := storagetest.NewClock()
		s, err := NewStore(t.TempDir(), WithClock(clock.Now))
		require.NoError(t, err)
		return storagetest.Harness{Store: s, Advance: clock.Advance}
	})
}

func TestStore_DoesNotPersistRawSecret(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s, err := NewStore(root)
	require.NoError(t, err)
	u := uuid.New()

	require.NoError(t, s.Store(ctx, u, "raw-secret-value", time.Hour))

	entries, err := os.ReadDir(filepath.Join(root, u.String()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, storage.Digest("raw-secret-value")+".json", entries[0].Name())

	body, err := os.ReadFile(filepath.Join(root, u.String(), entries[0].Name()))
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(body), "raw-secret-value"))
	assert.Contains(t, string(body), "expires_at")
}

func TestStore_LazyExpiryRemovesFile(t *testing.T) {
	ctx := context.Background()
	clock := storagetest.NewClock()
	root := t.TempDir()
	s, err := NewStore(root, WithClock(clock.Now))
	require.NoError(t, err)
	u := uuid.New()

	require.NoError(t, s.Store(ctx, u, "s", time.Minute))
	clock.Advance(2 * time.Minute)

	ok, err := s.Validate(ctx, u, "s")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = os.Stat(s.recordPath(u, storage.Digest("s")))
	assert.True(t, os.IsNotExist(err))
}

func TestStore_LazyExpiryKeepsRestoredRecord(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	start := time.Now()
	u := uuid.New()

	writer, err := NewStore(root, WithClock(func() time.Time { return start.Add(2 * time.Minute) }))
	require.NoError(t, err)

	// The reader sees the expired record, then the writer stores the same
	// secret again before the reader gets to delete it.
	var calls int
	reader, err := NewStore(root, WithClock(func() time.Time {
		calls++
		if calls == 2 {
			require.NoError(t, writer.Store(ctx, u, "s", time.Hour))
		}
		if calls == 1 {
			return start
		}
		return start.Add(2 * time.Minute)
	}))
	require.NoError(t, err)

	require.NoError(t, reader.Store(ctx, u, "s", time.Minute))

	ok, err := reader.Validate(ctx, u, "s")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = writer.Validate(ctx, u, "s")
	require.NoError(t, err)
	assert.True(t, ok, "the re-stored record survives lazy expiry")

	entries, err := os.ReadDir(reader.userDir(u))
	require.NoError(t, err)
	require.Len(t, entries, 1, "no tombstone is left behind")
	assert.Equal(t, storage.Digest("s")+".json", entries[0].Name())
}

func TestStore_CorruptRecordNeverValidates(t *testing.T) {
	ctx := context.Background()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	u := uuid.New()

	require.NoError(t, os.MkdirAll(s.userDir(u), dirPerm))
	require.NoError(t, os.WriteFile(s.recordPath(u, storage.Digest("s")), []byte("{not json"), filePerm))

	ok, err := s.Validate(ctx, u, "s")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_ConsumeLeavesNoTombstone(t *testing.T) {
	ctx := context.Background()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	u := uuid.New()

	require.NoError(t, s.Store(ctx, u, "s", time.Hour))
	ok, err := s.Consume(ctx, u, "s")
	require.NoError(t, err)
	require.True(t, ok)

	entries, err := os.ReadDir(s.userDir(u))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_PingReportsMissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "tokens")
	s, err := NewStore(root)
	require.NoError(t, err)
	require.NoError(t, s.Ping(context.Background()))

	require.NoError(t, os.RemoveAll(root))
	err = s.Ping(context.Background())
	require.ErrorIs(t, err, model.ErrStorageUnavailable)
}

package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/authkeeper/internal/model"
	"github.com/dtroode/authkeeper/internal/storage"
)

var (
	_ model.TokenStore = (*Store)(nil)
	_ model.Pinger     = (*Store)(nil)
)

const (
	dirPerm  = 0o700
	filePerm = 0o600
)

// record is the on-disk body of <root>/<user id>/<digest>.json.
type record struct {
	ExpiresAt int64 `json:"expires_at"`
}

// Store keeps one file per token under a root directory.
//
// Writes go through a temp file and rename so readers never observe partial
// records. Consume renames the record to a unique tombstone first; rename is
// atomic, so only one concurrent caller can win a given record. Lazy expiry
// in Validate moves the record aside the same way before deleting it.
type Store struct {
	root string
	now  func() time.Time
}

// Option configures Store.
type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates root if needed and returns a Store rooted there.
func NewStore(root string, opts ...Option) (*Store, error) {
	if err := os.MkdirAll(root, dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create token directory: %w", err)
	}

	s := &Store{root: root, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Store) Store(_ context.Context, userID uuid.UUID, secret string, ttl time.Duration) error {
	body, err := json.Marshal(record{ExpiresAt: s.now().Add(ttl).UnixNano()})
	if err != nil {
		return fmt.Errorf("failed to encode token record: %w", err)
	}

	// InvalidateAll may remove the user directory between MkdirAll and
	// CreateTemp; one retry covers that.
	for attempt := 0; ; attempt++ {
		err = s.writeRecord(userID, storage.Digest(secret), body)
		if err == nil || !errors.Is(err, fs.ErrNotExist) || attempt > 0 {
			break
		}
	}
	if err != nil {
		return unavailable("store", err)
	}

	return nil
}

func (s *Store) Validate(_ context.Context, userID uuid.UUID, secret string) (bool, error) {
	digest := storage.Digest(secret)

	rec, ok, err := readRecord(s.recordPath(userID, digest))
	if err != nil {
		return false, unavailable("validate", err)
	}
	if !ok {
		return false, nil
	}

	if s.expired(rec) {
		if err := s.dropExpired(userID, digest); err != nil {
			return false, unavailable("validate", err)
		}
		return false, nil
	}

	return true, nil
}

func (s *Store) Consume(_ context.Context, userID uuid.UUID, secret string) (bool, error) {
	digest := storage.Digest(secret)
	path := s.recordPath(userID, digest)
	tombstone := s.tombstonePath(userID, "consumed", digest)

	if err := os.Rename(path, tombstone); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, unavailable("consume", err)
	}

	rec, ok, err := readRecord(tombstone)
	if rmErr := removeIfExists(tombstone); err == nil && rmErr != nil {
		err = rmErr
	}
	if err != nil {
		return false, unavailable("consume", err)
	}

	return ok && !s.expired(rec), nil
}

func (s *Store) Invalidate(_ context.Context, userID uuid.UUID, secret string) error {
	if err := removeIfExists(s.recordPath(userID, storage.Digest(secret))); err != nil {
		return unavailable("invalidate", err)
	}
	return nil
}

func (s *Store) InvalidateAll(_ context.Context, userID uuid.UUID) error {
	if err := os.RemoveAll(s.userDir(userID)); err != nil {
		return unavailable("invalidate all", err)
	}
	return nil
}

// Ping checks that the root directory is still present.
func (s *Store) Ping(context.Context) error {
	info, err := os.Stat(s.root)
	if err != nil {
		return unavailable("ping", err)
	}
	if !info.IsDir() {
		return unavailable("ping", fmt.Errorf("%s is not a directory", s.root))
	}
	return nil
}

// dropExpired deletes an expired record. Store may have replaced it since it
// was read, so the record is moved aside and checked again; a fresh one is
// linked back unless a newer record already took its place.
func (s *Store) dropExpired(userID uuid.UUID, digest string) error {
	path := s.recordPath(userID, digest)
	tombstone := s.tombstonePath(userID, "expired", digest)

	if err := os.Rename(path, tombstone); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	rec, ok, err := readRecord(tombstone)
	if err == nil && ok && !s.expired(rec) {
		err = os.Link(tombstone, path)
		if errors.Is(err, fs.ErrExist) || errors.Is(err, fs.ErrNotExist) {
			err = nil
		}
	}
	if rmErr := removeIfExists(tombstone); err == nil {
		err = rmErr
	}
	return err
}

func (s *Store) writeRecord(userID uuid.UUID, digest string, body []byte) error {
	dir := s.userDir(userID)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, s.recordPath(userID, digest)); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

func (s *Store) userDir(userID uuid.UUID) string {
	return filepath.Join(s.root, userID.String())
}

func (s *Store) recordPath(userID uuid.UUID, digest string) string {
	return filepath.Join(s.userDir(userID), digest+".json")
}

func (s *Store) tombstonePath(userID uuid.UUID, kind, digest string) string {
	return filepath.Join(s.userDir(userID), "."+kind+"-"+digest+"-"+uuid.NewString())
}

// expired reports now > expiry; a record is still valid at its expiry instant.
func (s *Store) expired(rec record) bool {
	return s.now().UnixNano() > rec.ExpiresAt
}

// readRecord returns ok=false for a missing file. A corrupt file is reported
// as missing as well, since it can never validate.
func readRecord(path string) (record, bool, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return record{}, false, nil
		}
		return record{}, false, err
	}

	var rec record
	if err := json.Unmarshal(body, &rec); err != nil || rec.ExpiresAt == 0 {
		return record{}, false, nil
	}
	return rec, true, nil
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: file %s: %v", model.ErrStorageUnavailable, op, err)
}

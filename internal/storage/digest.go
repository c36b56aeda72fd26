// Package storage holds helpers shared by the token store backends.
package storage

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest returns the hex SHA-256 of a secret. Backends key records by digest
// so raw secrets never reach persistent storage.
func Digest(secret string) string {
	h := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(h[:])
}

package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/dtroode/authkeeper/internal/model"
)

var _ model.SecretGenerator = RandomSecret{}

// SecretBytes is the entropy of every generated secret.
const SecretBytes = 32

// RandomSecret generates hex encoded secrets from crypto/rand.
type RandomSecret struct{}

// NewSecret returns 32 random bytes, hex encoded.
func (RandomSecret) NewSecret() (string, error) {
	b := make([]byte, SecretBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

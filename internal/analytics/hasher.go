package analytics

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Hasher turns client addresses into stable, salted identifiers so unique
// visitors can be counted without storing raw IPs.
type Hasher struct {
	salt string
}

// NewHasher returns a Hasher with the given salt.
func NewHasher(salt string) *Hasher {
	return &Hasher{salt: salt}
}

// NewRandomHasher returns a Hasher with a random per-process salt.
func NewRandomHasher() (*Hasher, error) {
	salt, err := RandomToken()
	if err != nil {
		return nil, err
	}
	return NewHasher(salt), nil
}

// Hash returns the first 16 hex characters of sha256(ip + salt).
func (h *Hasher) Hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// RandomToken returns 32 random bytes hex encoded.
func RandomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

package auth

import (
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher produces and verifies one-way secret digests.
type PasswordHasher interface {
	Hash(secret string) (string, error)
	Compare(digest string, secret string) error
}

// BcryptHasher uses bcrypt; Compare runs in constant time for a given digest.
// Secrets are reduced to a fixed 44 byte SHA-256 form first, so bcrypt's
// 72 byte input limit never applies.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates BcryptHasher with provided cost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns bcrypt digest for provided secret.
func (h *BcryptHasher) Hash(secret string) (string, error) {
	encoded, err := bcrypt.GenerateFromPassword(prehash(secret), h.cost)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// Compare checks secret against stored digest.
func (h *BcryptHasher) Compare(digest string, secret string) error {
	return bcrypt.CompareHashAndPassword([]byte(digest), prehash(secret))
}

func prehash(secret string) []byte {
	sum := sha256.Sum256([]byte(secret))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}

package ident

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
)

// passwordSalt matches the salt baked into the application's credential
// check, so digests generated here authenticate against it.
const passwordSalt = "pms"

// NewID returns a fresh identifier for a generated entity.
func NewID() string {
	return uuid.NewString()
}

// HashPassword returns the hex-encoded SHA-256 digest of the password
// with the shared salt appended. Deterministic, so the default accounts
// keep reproducible credentials across runs.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password + passwordSalt))
	return hex.EncodeToString(sum[:])
}

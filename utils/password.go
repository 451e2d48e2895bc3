package utils

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// unusableHash is a well-formed bcrypt string that no password verifies against.
var unusableHash = "$2a$10$" + strings.Repeat(".", 53)

// dummyHash is compared against when a username does not exist, so that
// unknown users cost the same bcrypt work as wrong passwords.
var dummyHash = HashPassword("not-a-real-password")

// HashPassword returns a salted bcrypt hash. It never fails: if bcrypt refuses the
// input it falls back to a hash nobody can match.
func HashPassword(password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err == nil {
		return string(hashed)
	}
	slog.Error("Password hashing failed, storing unusable hash", "error", err)

	hashed, err = bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return unusableHash
	}
	return string(hashed)
}

// VerifyPassword reports whether password matches hash. Malformed hashes never match.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// DummyVerify burns one comparison and always reports false.
func DummyVerify(password string) bool {
	VerifyPassword(password, dummyHash)
	return false
}

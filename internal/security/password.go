package security

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	pbkdf2Iterations = 10000
	pbkdf2KeyLen     = 64
	saltLen          = 64
)

// HashPassword derives a PBKDF2-SHA512 hash with a fresh random salt.
// Both values are returned base64-encoded for storage.
func HashPassword(password string) (hash, salt string, err error) {
	raw := make([]byte, saltLen)
	if _, err := rand.Read(raw); err != nil {
		return "", "", fmt.Errorf("generate salt: %w", err)
	}
	salt = base64.StdEncoding.EncodeToString(raw)
	key := pbkdf2.Key([]byte(password), []byte(salt), pbkdf2Iterations, pbkdf2KeyLen, sha512.New)
	return base64.StdEncoding.EncodeToString(key), salt, nil
}

// VerifyPassword reports whether password derives to hash under salt.
func VerifyPassword(password, hash, salt string) bool {
	key := pbkdf2.Key([]byte(password), []byte(salt), pbkdf2Iterations, pbkdf2KeyLen, sha512.New)
	derived := base64.StdEncoding.EncodeToString(key)
	return subtle.ConstantTimeCompare([]byte(derived), []byte(hash)) == 1
}

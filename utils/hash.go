package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	hashIterations = 100000
	saltLen        = 16
	keyLen         = 32
)

// HashPassword derives a salted PBKDF2-HMAC-SHA256 key from the password and
// encodes it as "<iterations>.<salt b64>.<key b64>". The iteration count is
// stored alongside the hash, so it can be raised later without invalidating
// existing records.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	key := pbkdf2.Key([]byte(password), salt, hashIterations, keyLen, sha256.New)

	return fmt.Sprintf("%d.%s.%s",
		hashIterations,
		base64.StdEncoding.EncodeToString(salt),
		base64.StdEncoding.EncodeToString(key),
	), nil
}

// CheckPasswordHash verifies password against a stored HashPassword value.
// Any malformed stored value fails closed. The comparison is constant-time.
func CheckPasswordHash(password, stored string) bool {
	parts := strings.SplitN(stored, ".", 3)
	if len(parts) != 3 {
		return false
	}

	iterations, err := strconv.Atoi(parts[0])
	if err != nil || iterations <= 0 {
		return false
	}
	salt, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return false
	}
	hash, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil || len(hash) == 0 {
		return false
	}

	computed := pbkdf2.Key([]byte(password), salt, iterations, len(hash), sha256.New)
	return subtle.ConstantTimeCompare(computed, hash) == 1
}

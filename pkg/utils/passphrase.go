package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	saltLength  = 16
	keyLength   = 32
	timeCost    = 3
	memoryCost  = 64 * 1024
	parallelism = 2

	hashPrefix = "$argon2id$v=19$m=65536,t=3,p=2$"
)

// ErrInvalidHash is returned for hashes not produced by HashPassphrase.
var ErrInvalidHash = errors.New("invalid hash format")

// HashPassphrase hashes a passphrase using Argon2id.
// Format: $argon2id$v=19$m=65536,t=3,p=2$salt$hash
func HashPassphrase(passphrase string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	hash := argon2.IDKey([]byte(passphrase), salt, timeCost, memoryCost, parallelism, keyLength)

	return hashPrefix +
		base64.RawStdEncoding.EncodeToString(salt) + "$" +
		base64.RawStdEncoding.EncodeToString(hash), nil
}

// VerifyPassphrase reports whether passphrase matches hashed.
func VerifyPassphrase(passphrase, hashed string) (bool, error) {
	if !strings.HasPrefix(hashed, hashPrefix) {
		return false, ErrInvalidHash
	}
	parts := strings.Split(hashed, "$")
	if len(parts) != 6 {
		return false, ErrInvalidHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, ErrInvalidHash
	}
	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, ErrInvalidHash
	}

	computed := argon2.IDKey([]byte(passphrase), salt, timeCost, memoryCost, parallelism, uint32(len(hash)))
	return subtle.ConstantTimeCompare(computed, hash) == 1, nil
}

package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/mjpark-dev/boardapp/internal/common"
)

// PasswordHasher hashes plaintext passwords for storage and verifies
// candidates against stored records.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) error

	// DummyVerify performs a verification against a throwaway record and
	// always fails. Callers use it to keep the duration of a failed login
	// independent of whether the account exists.
	DummyVerify(password string) error
}

// BcryptHasher implements PasswordHasher with bcrypt. Every Hash call
// generates a fresh random salt, and the cost factor makes the function
// deliberately slow; both are embedded in the returned record.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher with the given cost factor. A cost
// outside bcrypt's supported range falls back to the library default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify recomputes the hash with the salt and cost stored in encoded and
// compares in constant time. A wrong password yields
// common.ErrInvalidCredentials; a stored record bcrypt cannot parse yields
// common.ErrCorruptCredential so the caller can treat it as an
// authentication failure instead of crashing.
func (h *BcryptHasher) Verify(password, encoded string) error {
	err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return common.ErrInvalidCredentials
	}
	return common.ErrCorruptCredential
}

// dummyHash is a valid bcrypt record for an unguessable password. Login
// verifies against it when the username does not exist, so the duration of
// a failed login does not reveal whether the account exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// DummyVerify burns the same work as a real verification and always fails.
func (h *BcryptHasher) DummyVerify(password string) error {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
	return common.ErrInvalidCredentials
}

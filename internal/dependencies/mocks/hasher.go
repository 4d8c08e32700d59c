package mocks

import (
	"github.com/mcoot/lifegame/internal/dependencies/hasher"
)

// PlainHasher is a fast, reversible Hasher for tests
type PlainHasher struct{}

// Ensure PlainHasher implements Hasher
var _ hasher.Hasher = (*PlainHasher)(nil)

// NewPlainHasher creates a new PlainHasher
func NewPlainHasher() *PlainHasher {
	return &PlainHasher{}
}

// Hash prefixes the password so it never equals the input
func (h *PlainHasher) Hash(password string) (string, error) {
	return "plain$" + password, nil
}

// Compare checks the password against a hash produced by Hash
func (h *PlainHasher) Compare(hash, password string) error {
	if hash != "plain$"+password {
		return hasher.ErrMismatch
	}
	return nil
}

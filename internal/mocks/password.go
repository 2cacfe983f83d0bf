package mocks

import (
	"errors"

	"github.com/taskdeck/taskdeck-api/internal/service/auth"
)

// MockPasswordHasher is a test double for auth.PasswordHasher.
type MockPasswordHasher struct {
	// Hashed is returned for every input when Err is nil.
	Hashed string
	Err    error
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash implements auth.PasswordHasher.Hash.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if m.Hashed != "" {
		return m.Hashed, nil
	}
	return "hashed:" + password, nil
}

// MockPasswordVerifier is a test double for auth.PasswordVerifier.
type MockPasswordVerifier struct {
	// ShouldSucceed controls whether Compare reports a match.
	ShouldSucceed bool
}

var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

// Compare implements auth.PasswordVerifier.Compare.
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.ShouldSucceed {
		return nil
	}
	return errors.New("password mismatch")
}

package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{
			name:     "valid password",
			password: "Sup3r-secret",
			wantErr:  nil,
		},
		{
			name:     "too short",
			password: "Ab1!",
			wantErr:  ErrPasswordTooShort,
		},
		{
			name:     "length checked before everything else",
			password: "AAAA AA",
			wantErr:  ErrPasswordTooShort,
		},
		{
			name:     "no lowercase",
			password: "PASSWORD1!",
			wantErr:  ErrPasswordNoLower,
		},
		{
			name:     "no uppercase",
			password: "password1!",
			wantErr:  ErrPasswordNoUpper,
		},
		{
			// Lacks uppercase, digit, and symbol; uppercase is reported
			// because it is checked first.
			name:     "uppercase reported before digit and symbol",
			password: "testtesttest",
			wantErr:  ErrPasswordNoUpper,
		},
		{
			name:     "no digit",
			password: "Password!!",
			wantErr:  ErrPasswordNoDigit,
		},
		{
			// Lacks digit and symbol; digit is checked first.
			name:     "digit reported before symbol",
			password: "Passwordddd",
			wantErr:  ErrPasswordNoDigit,
		},
		{
			name:     "no symbol",
			password: "Password123",
			wantErr:  ErrPasswordNoSymbol,
		},
		{
			name:     "space counts as a symbol",
			password: "Password 123",
			wantErr:  nil,
		},
		{
			// 7 characters, 13 bytes; length must count characters.
			name:     "multibyte characters do not inflate the length",
			password: "Aa1!€€€",
			wantErr:  ErrPasswordTooShort,
		},
		{
			name:     "valid password with multibyte symbols",
			password: "Aa1!€€€€",
			wantErr:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrInvalidPassword)
		})
	}
}

package auth

import (
	"errors"
	"fmt"
)

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid or signature doesn't match
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates the token is not yet valid (nbf claim in the future)
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrInvalidRefreshToken indicates the refresh token format is invalid
	// or its signature doesn't match
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// ErrExpiredRefreshToken indicates the refresh token has expired
	ErrExpiredRefreshToken = errors.New("refresh token has expired")

	// ErrWrongTokenType indicates a token was presented in the wrong context,
	// e.g. an access token sent to the refresh endpoint
	ErrWrongTokenType = errors.New("wrong token type")

	// ErrInvalidCredentials is returned on login when the username is unknown
	// or the password does not match. The two cases are deliberately not
	// distinguished, so the response can't be used for username enumeration.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ErrInvalidPassword is the parent of every password policy violation.
// The wrapped variants carry the user-visible reason for the first rule
// that failed.
var ErrInvalidPassword = errors.New("invalid password")

// Password policy violations, one per rule, in check order.
var (
	ErrPasswordTooShort = fmt.Errorf("%w: must be at least 8 characters long", ErrInvalidPassword)
	ErrPasswordNoLower  = fmt.Errorf("%w: must contain at least one lowercase letter", ErrInvalidPassword)
	ErrPasswordNoUpper  = fmt.Errorf("%w: must contain at least one uppercase letter", ErrInvalidPassword)
	ErrPasswordNoDigit  = fmt.Errorf("%w: must contain at least one digit", ErrInvalidPassword)
	ErrPasswordNoSymbol = fmt.Errorf("%w: must contain at least one symbol", ErrInvalidPassword)
)

package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing JWT authentication tokens.
// The identity claim in every token is the username.
type JWTService interface {
	// GenerateToken creates a signed JWT access token bound to the username.
	// Returns the token string or an error if token generation fails.
	GenerateToken(ctx context.Context, username string) (string, error)

	// ValidateToken validates the provided access token string and extracts the claims.
	// Returns the claims if the token is valid, or an error if validation
	// fails (expired, invalid signature, wrong token type, etc.).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// GenerateRefreshToken creates a signed JWT refresh token bound to the username.
	// Refresh tokens have a longer lifetime and are used solely to obtain new
	// access tokens.
	GenerateRefreshToken(ctx context.Context, username string) (string, error)

	// ValidateRefreshToken validates the provided refresh token string and extracts
	// the claims. Returns an error if validation fails (expired, invalid
	// signature, wrong token type, etc.).
	ValidateRefreshToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the custom claims structure for the JWT tokens.
// It extends standard JWT registered claims with application-specific fields.
type Claims struct {
	// Username is the identity the token was issued for. It doubles as the
	// authorization subject for protected operations.
	Username string `json:"username,omitempty"`

	// TokenType indicates the purpose of the token ("access" or "refresh").
	// Used to prevent token misuse across different contexts.
	TokenType string `json:"type,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}

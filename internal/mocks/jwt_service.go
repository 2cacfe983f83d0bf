package mocks

import (
	"context"

	"github.com/taskdeck/taskdeck-api/internal/service/auth"
)

// MockJWTService is a configurable test double for auth.JWTService.
type MockJWTService struct {
	// Token is returned by both generate methods when Err is nil.
	Token string

	// Err, when set, is returned by every method.
	Err error

	// ValidUsername is the username embedded in claims returned by the
	// validate methods.
	ValidUsername string
}

var _ auth.JWTService = (*MockJWTService)(nil)

// GenerateToken implements auth.JWTService.GenerateToken.
func (m *MockJWTService) GenerateToken(ctx context.Context, username string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Token, nil
}

// ValidateToken implements auth.JWTService.ValidateToken.
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return &auth.Claims{Username: m.ValidUsername, TokenType: "access"}, nil
}

// GenerateRefreshToken implements auth.JWTService.GenerateRefreshToken.
func (m *MockJWTService) GenerateRefreshToken(ctx context.Context, username string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Token, nil
}

// ValidateRefreshToken implements auth.JWTService.ValidateRefreshToken.
func (m *MockJWTService) ValidateRefreshToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return &auth.Claims{Username: m.ValidUsername, TokenType: "refresh"}, nil
}

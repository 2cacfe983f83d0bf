package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/platform/logger"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

// TokenPair bundles the credentials issued on a successful login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Service orchestrates the password and token lifecycle: registration,
// login, and token refresh. It owns no state beyond its injected
// collaborators.
type Service struct {
	users      store.UserStore
	jwtService JWTService
	hasher     PasswordHasher
	verifier   PasswordVerifier
}

// NewService creates an auth Service with the given dependencies.
func NewService(
	users store.UserStore,
	jwtService JWTService,
	hasher PasswordHasher,
	verifier PasswordVerifier,
) *Service {
	return &Service{
		users:      users,
		jwtService: jwtService,
		hasher:     hasher,
		verifier:   verifier,
	}
}

// Register validates the password against the policy, then creates the
// user. Returns a password policy violation (wrapping ErrInvalidPassword),
// store.ErrUsernameExists if the name is taken, or nil on success.
func (s *Service) Register(ctx context.Context, username, password string) error {
	log := logger.FromContext(ctx)

	if err := ValidatePassword(password); err != nil {
		log.Debug("registration rejected by password policy", "username", username)
		return err
	}

	// Friendly pre-check; the unique constraint on username backstops the
	// read-then-write race at the storage layer.
	_, err := s.users.GetByUsername(ctx, username)
	if err == nil {
		return store.ErrUsernameExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("failed to check username availability: %w", err)
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := domain.NewUser(username, hashed)
	if err != nil {
		return err
	}

	if err := s.users.Create(ctx, user); err != nil {
		return err
	}

	log.Info("user registered", "username", username, "user_id", user.ID)
	return nil
}

// Login verifies the credentials and issues an access/refresh token pair
// bound to the username. An unknown username and a wrong password both
// yield ErrInvalidCredentials; callers must not distinguish them.
func (s *Service) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	log := logger.FromContext(ctx)

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.jwtService.GenerateToken(ctx, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwtService.GenerateRefreshToken(ctx, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	log.Info("successful login", "username", username)
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh validates a refresh token and issues a new access token for the
// same identity. The refresh token itself is not rotated.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	log := logger.FromContext(ctx)

	claims, err := s.jwtService.ValidateRefreshToken(ctx, refreshToken)
	if err != nil {
		return "", err
	}

	accessToken, err := s.jwtService.GenerateToken(ctx, claims.Username)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}

	log.Info("token refreshed", "username", claims.Username)
	return accessToken, nil
}

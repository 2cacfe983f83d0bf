package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck-api/internal/api/shared"
	"github.com/taskdeck/taskdeck-api/internal/mocks"
	"github.com/taskdeck/taskdeck-api/internal/service/auth"
)

// echoUsernameHandler writes back the username the middleware placed in the
// request context, so tests can verify propagation.
func echoUsernameHandler(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, ok := r.Context().Value(shared.UsernameContextKey).(string)
		require.True(t, ok, "username missing from request context")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(username))
	})
}

func TestAuthenticatePassesValidToken(t *testing.T) {
	t.Parallel()

	jwtService := &mocks.MockJWTService{ValidUsername: "alice"}
	handler := NewAuthMiddleware(jwtService).Authenticate(echoUsernameHandler(t))

	req := httptest.NewRequest("GET", "/tasks", nil)
	req.Header.Set("Authorization", "Bearer some-token")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "alice", recorder.Body.String())
}

func TestAuthenticateRejectsBadHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not a bearer scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "bearer without token", header: "Bearer"},
		{name: "too many parts", header: "Bearer one two"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			jwtService := &mocks.MockJWTService{ValidUsername: "alice"}
			nextCalled := false
			handler := NewAuthMiddleware(jwtService).Authenticate(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					nextCalled = true
				}))

			req := httptest.NewRequest("GET", "/tasks", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, req)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.False(t, nextCalled, "handler must not run for a rejected request")
			assert.Contains(t, recorder.Body.String(), "authorization header required")
		})
	}
}

func TestAuthenticateMapsValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "expired token",
			err:         auth.ErrExpiredToken,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "token expired",
		},
		{
			name:        "invalid token",
			err:         auth.ErrInvalidToken,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "invalid token",
		},
		{
			name:        "refresh token presented as access token",
			err:         auth.ErrWrongTokenType,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "invalid token",
		},
		{
			name:        "unexpected validation failure",
			err:         assert.AnError,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "authentication error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			jwtService := &mocks.MockJWTService{Err: tt.err}
			nextCalled := false
			handler := NewAuthMiddleware(jwtService).Authenticate(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					nextCalled = true
				}))

			req := httptest.NewRequest("GET", "/tasks", nil)
			req.Header.Set("Authorization", "Bearer some-token")

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.False(t, nextCalled)
			assert.Contains(t, recorder.Body.String(), tt.wantMessage)
		})
	}
}

func TestBearerToken(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer abc.def.ghi")

	token, err := BearerToken(req)
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	bare := httptest.NewRequest("GET", "/", nil)
	_, err = BearerToken(bare)
	assert.ErrorIs(t, err, auth.ErrMissingToken)
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck-api/internal/api/shared"
	"github.com/taskdeck/taskdeck-api/internal/config"
	"github.com/taskdeck/taskdeck-api/internal/mocks"
	"github.com/taskdeck/taskdeck-api/internal/service/auth"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:                   "test-secret-that-is-at-least-32-chars-long",
		TokenLifetimeMinutes:        15,
		RefreshTokenLifetimeMinutes: 60,
	}
}

// newAuthTestHandler builds an AuthHandler over an in-memory user store
// and a real JWT service so token semantics stay end-to-end honest.
func newAuthTestHandler(t *testing.T) (*AuthHandler, *auth.Service) {
	t.Helper()

	jwtService, err := auth.NewJWTService(testAuthConfig())
	require.NoError(t, err)

	authService := auth.NewService(
		mocks.NewMockUserStore(),
		jwtService,
		&mocks.MockPasswordHasher{},
		&mocks.MockPasswordVerifier{ShouldSucceed: true},
	)
	return NewAuthHandler(authService), authService
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, payload map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	handler(recorder, req)
	return recorder
}

func TestRegisterEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		payload     map[string]interface{}
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "valid registration",
			payload:     map[string]interface{}{"username": "alice", "password": "Sup3r-secret"},
			wantStatus:  http.StatusCreated,
			wantMessage: "user alice created successfully",
		},
		{
			name:        "password too short",
			payload:     map[string]interface{}{"username": "bob", "password": "Ab1!"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Password must be at least 8 characters long.",
		},
		{
			name:        "password without uppercase",
			payload:     map[string]interface{}{"username": "bob", "password": "testtesttest"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Password must contain at least one uppercase letter.",
		},
		{
			name:        "password without symbol",
			payload:     map[string]interface{}{"username": "bob", "password": "Password123"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Password must contain at least one symbol.",
		},
		{
			name:        "missing username",
			payload:     map[string]interface{}{"password": "Sup3r-secret"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "username and password are required",
		},
		{
			name:        "missing password",
			payload:     map[string]interface{}{"username": "bob"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "username and password are required",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			handler, _ := newAuthTestHandler(t)

			recorder := postJSON(t, handler.Register, "/register", tt.payload)
			assert.Equal(t, tt.wantStatus, recorder.Code)

			var resp shared.ErrorResponse
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}

func TestRegisterEndpointDuplicateUsername(t *testing.T) {
	t.Parallel()
	handler, _ := newAuthTestHandler(t)

	payload := map[string]interface{}{"username": "alice", "password": "Sup3r-secret"}

	first := postJSON(t, handler.Register, "/register", payload)
	assert.Equal(t, http.StatusCreated, first.Code)

	second := postJSON(t, handler.Register, "/register", payload)
	assert.Equal(t, http.StatusBadRequest, second.Code)

	var resp shared.ErrorResponse
	require.NoError(t, json.NewDecoder(second.Body).Decode(&resp))
	assert.Equal(t, "username alice already exists", resp.Message)
}

func TestLoginEndpoint(t *testing.T) {
	t.Parallel()
	handler, authService := newAuthTestHandler(t)
	require.NoError(t, authService.Register(context.Background(), "alice", "Sup3r-secret"))

	t.Run("valid credentials return both tokens", func(t *testing.T) {
		recorder := postJSON(t, handler.Login, "/login",
			map[string]interface{}{"username": "alice", "password": "Sup3r-secret"})
		require.Equal(t, http.StatusOK, recorder.Code)

		var resp LoginResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
	})

	t.Run("unknown username gets the same generic message as a wrong password", func(t *testing.T) {
		// The handler's verifier always succeeds, so only the lookup can
		// fail; a dedicated handler with a failing verifier covers the
		// wrong-password path.
		unknownRec := postJSON(t, handler.Login, "/login",
			map[string]interface{}{"username": "nobody", "password": "Sup3r-secret"})
		assert.Equal(t, http.StatusUnauthorized, unknownRec.Code)

		failingService := auth.NewService(
			mocks.NewMockUserStore(),
			&mocks.MockJWTService{Token: "t"},
			&mocks.MockPasswordHasher{},
			&mocks.MockPasswordVerifier{ShouldSucceed: false},
		)
		require.NoError(t, failingService.Register(context.Background(), "alice", "Sup3r-secret"))
		wrongPassRec := postJSON(t, NewAuthHandler(failingService).Login, "/login",
			map[string]interface{}{"username": "alice", "password": "wrong"})
		assert.Equal(t, http.StatusUnauthorized, wrongPassRec.Code)

		var unknownResp, wrongPassResp shared.ErrorResponse
		require.NoError(t, json.NewDecoder(unknownRec.Body).Decode(&unknownResp))
		require.NoError(t, json.NewDecoder(wrongPassRec.Body).Decode(&wrongPassResp))
		assert.Equal(t, "invalid username or password", unknownResp.Message)
		assert.Equal(t, wrongPassResp.Message, unknownResp.Message)
	})
}

func TestRefreshEndpoint(t *testing.T) {
	t.Parallel()
	handler, authService := newAuthTestHandler(t)
	ctx := context.Background()
	require.NoError(t, authService.Register(ctx, "alice", "Sup3r-secret"))

	tokens, err := authService.Login(ctx, "alice", "Sup3r-secret")
	require.NoError(t, err)

	refresh := func(bearer string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/refresh", nil)
		if bearer != "" {
			req.Header.Set("Authorization", "Bearer "+bearer)
		}
		recorder := httptest.NewRecorder()
		handler.RefreshToken(recorder, req)
		return recorder
	}

	t.Run("valid refresh token yields a new access token", func(t *testing.T) {
		recorder := refresh(tokens.RefreshToken)
		require.Equal(t, http.StatusOK, recorder.Code)

		var resp RefreshResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("access token is rejected by the refresh endpoint", func(t *testing.T) {
		recorder := refresh(tokens.AccessToken)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		recorder := refresh("")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/taskdeck/taskdeck-api/internal/api/shared"
	"github.com/taskdeck/taskdeck-api/internal/service"
	"github.com/taskdeck/taskdeck-api/internal/service/auth"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Validation and conflict errors both surface as 400 on this API.
	case errors.Is(err, auth.ErrInvalidPassword),
		errors.Is(err, store.ErrDuplicate),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "an unexpected error occurred"
	}

	switch {
	// Password policy violations are deliberately user-visible; the message
	// names the first rule that failed.
	case errors.Is(err, auth.ErrInvalidPassword):
		return policyMessage(err)

	case errors.Is(err, auth.ErrInvalidCredentials):
		return auth.ErrInvalidCredentials.Error()

	case errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return "invalid refresh token"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return "invalid token"

	case errors.Is(err, store.ErrUsernameExists):
		return "username already exists"

	case errors.Is(err, service.ErrTaskNotFound), errors.Is(err, store.ErrTaskNotFound):
		return "task not found"

	case errors.Is(err, store.ErrNotFound):
		return "not found"

	case errors.Is(err, store.ErrInvalidEntity):
		return "invalid entity data"

	default:
		return "an unexpected error occurred"
	}
}

// HandleAPIError writes the response for err, using userMessage when
// non-empty and the safe mapped message otherwise. The raw error goes to
// the log only.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, userMessage string) {
	status := MapErrorToStatusCode(err)
	if userMessage == "" {
		userMessage = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, userMessage, err)
}

// policyMessage strips the sentinel prefix from a password policy error so
// the client sees "Password must ..." rather than the wrapped chain.
func policyMessage(err error) string {
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, auth.ErrInvalidPassword.Error()+": "); ok {
		return "Password " + rest + "."
	}
	return msg
}

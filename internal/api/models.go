package api

// Common request/response structures

// CredentialsRequest defines the payload for the registration and login
// endpoints.
type CredentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	// AccessToken is the short-lived JWT used for API authorization.
	AccessToken string `json:"access_token"`

	// RefreshToken is the longer-lived JWT used solely to mint new access
	// tokens.
	RefreshToken string `json:"refresh_token"`
}

// RefreshResponse defines the successful response for the token refresh
// endpoint. The refresh token is not rotated, so only the new access token
// comes back.
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

// TaskRequest defines the payload for task creation and update.
// Priority is optional; a missing or zero value becomes the default
// priority of 1.
type TaskRequest struct {
	Name     string `json:"name"     validate:"required"`
	Priority int    `json:"priority" validate:"gte=0"`
}

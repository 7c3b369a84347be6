package dto

import "time"

// ExchangeCodeRequest is the authorization code the front-end received from Google.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
	// State is the value from the login redirect. When set it must match the state cookie.
	State string `json:"state"`
}

// TokenResponse carries a bearer token proving Identity until ExpiresAt.
type TokenResponse struct {
	Token     string    `json:"token"`
	Identity  string    `json:"identity"`
	ExpiresAt time.Time `json:"expiresAt"`
}

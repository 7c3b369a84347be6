package services

import (
	"context"
	"time"

	"github.com/SscSPs/finance_ledger/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// TokenSvcFacade defines the interface for identity proof tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken signs a token proving identity, returning it with its expiry.
	GenerateAccessToken(ctx context.Context, identity domain.Identity) (string, time.Time, error)
	// ParseAccessToken validates a token and returns the identity it proves.
	ParseAccessToken(ctx context.Context, token string) (domain.Identity, error)
}

// GoogleOAuthHandlerSvcFacade defines the interface for Google OAuth operations.
type GoogleOAuthHandlerSvcFacade interface {
	// GenerateStateString creates a secure random string to be used as a CSRF token for OAuth flow.
	GenerateStateString(ctx context.Context) (string, error)
	// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
	GetGoogleLoginURL(ctx context.Context, state string) string
	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	// ValidateGoogleIDToken validates an ID token string from Google and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}

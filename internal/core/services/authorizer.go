package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/finance_ledger/internal/apperrors"
	"github.com/SscSPs/finance_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/finance_ledger/internal/core/ports/services"
	"github.com/SscSPs/finance_ledger/internal/middleware"
)

// contextAuthorizer accepts a call when the identity proven by the caller
// (bearer token or API key, recorded in the context by middleware) is exactly
// the identity the call claims to act for. Only self-authorization exists.
type contextAuthorizer struct{}

// NewContextAuthorizer creates the production IdentityAuthorizer.
func NewContextAuthorizer() portssvc.IdentityAuthorizer {
	return contextAuthorizer{}
}

func (contextAuthorizer) RequireAuth(ctx context.Context, identity domain.Identity) error {
	proven, ok := middleware.GetProvenIdentity(ctx)
	if !ok {
		return fmt.Errorf("no proof of identity presented for %s: %w", identity, apperrors.ErrUnauthorized)
	}
	if proven != identity {
		return fmt.Errorf("caller proved %s, not %s: %w", proven, identity, apperrors.ErrUnauthorized)
	}
	return nil
}

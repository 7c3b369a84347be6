package services

import (
	"context"

	"github.com/SscSPs/finance_ledger/internal/core/domain"
)

// APIKeySvc validates static API keys configured for machine callers.
type APIKeySvc interface {
	// ValidateAPIKey checks a raw "identity.secret" key and returns the identity it proves.
	ValidateAPIKey(ctx context.Context, rawKey string) (domain.Identity, error)
}

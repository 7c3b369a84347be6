package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/finance_ledger/internal/apperrors"
	"github.com/SscSPs/finance_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/finance_ledger/internal/core/ports/services"
	"github.com/SscSPs/finance_ledger/internal/utils"
)

// apiKeyService implements the APIKeySvc interface over the bcrypt hashes
// configured in API_KEYS.
type apiKeyService struct {
	hashes map[string]string
}

// NewAPIKeyService creates a new instance of apiKeyService
func NewAPIKeyService(hashes map[string]string) portssvc.APIKeySvc {
	copied := make(map[string]string, len(hashes))
	for identity, hash := range hashes {
		copied[identity] = hash
	}
	return &apiKeyService{hashes: copied}
}

// ValidateAPIKey splits "identity.secret" on the last dot, so identities may
// themselves contain dots.
func (s *apiKeyService) ValidateAPIKey(ctx context.Context, rawKey string) (domain.Identity, error) {
	sep := strings.LastIndex(rawKey, ".")
	if sep <= 0 || sep == len(rawKey)-1 {
		return "", fmt.Errorf("malformed api key: %w", apperrors.ErrUnauthorized)
	}
	identity, secret := rawKey[:sep], rawKey[sep+1:]

	hash, ok := s.hashes[identity]
	if !ok {
		return "", fmt.Errorf("unknown api key identity %s: %w", identity, apperrors.ErrUnauthorized)
	}
	if !utils.CheckSecretHash(secret, hash) {
		return "", fmt.Errorf("api key secret mismatch for %s: %w", identity, apperrors.ErrUnauthorized)
	}
	return domain.Identity(identity), nil
}

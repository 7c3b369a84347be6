package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/finance_ledger/internal/apperrors"
)

// Identity is an opaque, externally verifiable principal owning ledger state.
// It doubles as the storage key component and the authorization subject.
type Identity string

// Validate rejects identities that cannot address storage.
func (i Identity) Validate() error {
	if strings.TrimSpace(string(i)) == "" {
		return fmt.Errorf("identity must not be empty: %w", apperrors.ErrValidation)
	}
	return nil
}

func (i Identity) String() string {
	return string(i)
}

package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/finance_ledger/internal/apperrors"
)

// StorageKeyKind tags the aggregate stored under a StorageKey.
type StorageKeyKind string

const (
	KeyAdmin        StorageKeyKind = "admin"
	KeyAssets       StorageKeyKind = "assets"
	KeyTransactions StorageKeyKind = "transactions"
	KeyGoals        StorageKeyKind = "goals"
)

const keySeparator = ":"

// StorageKey addresses one stored aggregate. Owner is empty for the Admin singleton.
type StorageKey struct {
	Kind  StorageKeyKind
	Owner Identity
}

// AdminKey addresses the administrator singleton.
func AdminKey() StorageKey {
	return StorageKey{Kind: KeyAdmin}
}

// AssetsKey addresses the asset list of owner.
func AssetsKey(owner Identity) StorageKey {
	return StorageKey{Kind: KeyAssets, Owner: owner}
}

// TransactionsKey addresses the transaction list of owner.
func TransactionsKey(owner Identity) StorageKey {
	return StorageKey{Kind: KeyTransactions, Owner: owner}
}

// GoalsKey addresses the goal list of owner.
func GoalsKey(owner Identity) StorageKey {
	return StorageKey{Kind: KeyGoals, Owner: owner}
}

// String renders the canonical form used as the physical key: "admin" or "<kind>:<owner>".
// The owner is everything after the first separator, so owners may contain ':' themselves.
func (k StorageKey) String() string {
	if k.Kind == KeyAdmin {
		return string(KeyAdmin)
	}
	return string(k.Kind) + keySeparator + string(k.Owner)
}

// ParseStorageKey is the inverse of StorageKey.String.
func ParseStorageKey(s string) (StorageKey, error) {
	if s == string(KeyAdmin) {
		return AdminKey(), nil
	}
	kind, owner, ok := strings.Cut(s, keySeparator)
	if !ok || owner == "" {
		return StorageKey{}, fmt.Errorf("malformed storage key %q: %w", s, apperrors.ErrValidation)
	}
	switch StorageKeyKind(kind) {
	case KeyAssets, KeyTransactions, KeyGoals:
		return StorageKey{Kind: StorageKeyKind(kind), Owner: Identity(owner)}, nil
	default:
		return StorageKey{}, fmt.Errorf("unknown storage key kind %q: %w", kind, apperrors.ErrValidation)
	}
}

package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/finance_ledger/internal/core/domain"
	"github.com/SscSPs/finance_ledger/internal/models"
)

// ToListDocument encodes a stored list. A nil list encodes as "[]" so absent
// and empty lists are indistinguishable once written.
func ToListDocument[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode list document: %w", err)
	}
	return raw, nil
}

// FromListDocument decodes a stored list, never returning nil.
func FromListDocument[T any](raw []byte) ([]T, error) {
	items := []T{}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode list document: %w", err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// ToAdminDocument encodes the administrator singleton.
func ToAdminDocument(admin domain.Identity) ([]byte, error) {
	raw, err := json.Marshal(admin)
	if err != nil {
		return nil, fmt.Errorf("failed to encode admin document: %w", err)
	}
	return raw, nil
}

// FromAdminDocument decodes the administrator singleton.
func FromAdminDocument(raw []byte) (domain.Identity, error) {
	var admin domain.Identity
	if err := json.Unmarshal(raw, &admin); err != nil {
		return "", fmt.Errorf("failed to decode admin document: %w", err)
	}
	return admin, nil
}

// ToModelStateEntry builds the row stored for key.
func ToModelStateEntry(key domain.StorageKey, value []byte) models.StateEntry {
	return models.StateEntry{StorageKey: key.String(), Value: value}
}

package repositories

import (
	"context"

	"github.com/SscSPs/finance_ledger/internal/core/domain"
)

// StateReader defines read operations on the ledger key-value store.
type StateReader interface {
	// GetState returns the raw document stored under key, or apperrors.ErrNotFound.
	GetState(ctx context.Context, key domain.StorageKey) ([]byte, error)

	// HasState reports whether anything is stored under key.
	HasState(ctx context.Context, key domain.StorageKey) (bool, error)
}

// StateWriter defines write operations on the ledger key-value store.
type StateWriter interface {
	// PutState stores value under key, replacing any previous document.
	PutState(ctx context.Context, key domain.StorageKey, value []byte) error
}

// StateReadWriter is the view handed to a transaction body.
type StateReadWriter interface {
	StateReader
	StateWriter
}

// StateRepositoryFacade combines all state repository interfaces
type StateRepositoryFacade interface {
	StateReadWriter
	TransactionManager
}

// Package memory provides an in-process implementation of the ledger
// key-value store used for tests and ephemeral deployments.
package memory

import (
	"bytes"
	"context"
	"sync"

	"github.com/SscSPs/finance_ledger/internal/apperrors"
	"github.com/SscSPs/finance_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_ledger/internal/core/ports/repositories"
)

// StateRepository keeps every document in a map keyed by the canonical storage key.
type StateRepository struct {
	txMu sync.Mutex // serializes WithinTx

	mu   sync.RWMutex
	data map[string][]byte
}

// Ensure implementation matches interface
var _ portsrepo.StateRepositoryFacade = (*StateRepository)(nil)

// NewStateRepository creates an empty store.
func NewStateRepository() *StateRepository {
	return &StateRepository{data: make(map[string][]byte)}
}

func (r *StateRepository) GetState(ctx context.Context, key domain.StorageKey) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, ok := r.data[key.String()]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return bytes.Clone(value), nil
}

func (r *StateRepository) HasState(ctx context.Context, key domain.StorageKey) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.data[key.String()]
	return ok, nil
}

func (r *StateRepository) PutState(ctx context.Context, key domain.StorageKey, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key.String()] = bytes.Clone(value)
	return nil
}

// WithinTx stages writes in an overlay and applies them only when fn succeeds.
func (r *StateRepository) WithinTx(ctx context.Context, fn portsrepo.TxFunc) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	tx := &stagedTx{base: r, writes: make(map[string][]byte)}
	if err := fn(ctx, tx); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for key, value := range tx.writes {
		r.data[key] = value
	}
	return nil
}

// Len reports how many keys are stored.
func (r *StateRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data)
}

// stagedTx reads through its own pending writes before falling back to the base store.
type stagedTx struct {
	base   *StateRepository
	writes map[string][]byte
}

func (t *stagedTx) GetState(ctx context.Context, key domain.StorageKey) ([]byte, error) {
	if value, ok := t.writes[key.String()]; ok {
		return bytes.Clone(value), nil
	}
	return t.base.GetState(ctx, key)
}

func (t *stagedTx) HasState(ctx context.Context, key domain.StorageKey) (bool, error) {
	if _, ok := t.writes[key.String()]; ok {
		return true, nil
	}
	return t.base.HasState(ctx, key)
}

func (t *stagedTx) PutState(ctx context.Context, key domain.StorageKey, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.writes[key.String()] = bytes.Clone(value)
	return nil
}

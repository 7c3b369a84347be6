package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/finance_ledger/internal/apperrors"
	"github.com/SscSPs/finance_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/finance_ledger/internal/models"
	"github.com/SscSPs/finance_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ledgerLockID is the advisory lock every ledger transaction holds, so that
// mutations run one at a time across all server instances.
const ledgerLockID int64 = 0x4c45444745520001

type PgxStateRepository struct {
	BaseRepository
}

// newPgxStateRepository creates a new repository for ledger state documents.
func newPgxStateRepository(pool *pgxpool.Pool) *PgxStateRepository {
	return &PgxStateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.StateRepositoryFacade = (*PgxStateRepository)(nil)

// GetState retrieves the document stored under key.
func (r *PgxStateRepository) GetState(ctx context.Context, key domain.StorageKey) ([]byte, error) {
	return getState(ctx, r.Pool, key)
}

// HasState reports whether a document is stored under key.
func (r *PgxStateRepository) HasState(ctx context.Context, key domain.StorageKey) (bool, error) {
	return hasState(ctx, r.Pool, key)
}

// PutState upserts the document stored under key.
func (r *PgxStateRepository) PutState(ctx context.Context, key domain.StorageKey, value []byte) error {
	return putState(ctx, r.Pool, key, value)
}

// WithinTx runs fn inside a database transaction holding the ledger advisory lock.
func (r *PgxStateRepository) WithinTx(ctx context.Context, fn portsrepo.TxFunc) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1);`, ledgerLockID); err != nil {
		return fmt.Errorf("failed to acquire ledger lock: %w", err)
	}

	if err := fn(ctx, &pgxStateTx{tx: tx}); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// pgxStateTx is the transactional view handed to WithinTx bodies.
type pgxStateTx struct {
	tx pgx.Tx
}

func (t *pgxStateTx) GetState(ctx context.Context, key domain.StorageKey) ([]byte, error) {
	return getState(ctx, t.tx, key)
}

func (t *pgxStateTx) HasState(ctx context.Context, key domain.StorageKey) (bool, error) {
	return hasState(ctx, t.tx, key)
}

func (t *pgxStateTx) PutState(ctx context.Context, key domain.StorageKey, value []byte) error {
	return putState(ctx, t.tx, key, value)
}

func getState(ctx context.Context, q querier, key domain.StorageKey) ([]byte, error) {
	query := `
		SELECT value
		FROM ledger_state
		WHERE storage_key = $1;
	`
	var value []byte
	err := q.QueryRow(ctx, query, key.String()).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get state %s: %w", key, err)
	}
	return value, nil
}

func hasState(ctx context.Context, q querier, key domain.StorageKey) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM ledger_state WHERE storage_key = $1);`
	var exists bool
	if err := q.QueryRow(ctx, query, key.String()).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check state %s: %w", key, err)
	}
	return exists, nil
}

func putState(ctx context.Context, q querier, key domain.StorageKey, value []byte) error {
	entry := mapping.ToModelStateEntry(key, value)
	now := time.Now().UTC()
	entry.AuditTimes = models.AuditTimes{CreatedAt: now, LastUpdatedAt: now}

	query := `
		INSERT INTO ledger_state (storage_key, value, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (storage_key) DO UPDATE SET
			value = EXCLUDED.value,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err := q.Exec(ctx, query, entry.StorageKey, entry.Value, entry.CreatedAt, entry.LastUpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to put state %s: %w", key, err)
	}
	return nil
}

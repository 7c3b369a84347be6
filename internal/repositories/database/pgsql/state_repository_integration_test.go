package pgsql

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/SscSPs/finance_ledger/internal/apperrors"
	"github.com/SscSPs/finance_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/finance_ledger/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPgxStateRepositoryIntegration exercises the store against a live database.
func TestPgxStateRepositoryIntegration(t *testing.T) {
	if os.Getenv("RUN_PG_INTEGRATION") != "true" {
		t.Skip("set RUN_PG_INTEGRATION=true to run this integration test")
	}
	dbURL := os.Getenv("PGSQL_URL")
	if dbURL == "" {
		t.Fatal("PGSQL_URL is required")
	}

	ctx := context.Background()
	pool, err := database.NewPgxPool(ctx, dbURL, true)
	require.NoError(t, err)
	defer database.ClosePgxPool(pool)

	schema, err := os.ReadFile("../../../../migrations/000001_create_ledger_state.up.sql")
	require.NoError(t, err)
	_, err = pool.Exec(ctx, string(schema))
	require.NoError(t, err)

	repo := newPgxStateRepository(pool)
	owner := domain.Identity(fmt.Sprintf("itest_%d", time.Now().UnixNano()))
	key := domain.AssetsKey(owner)

	_, err = repo.GetState(ctx, key)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = repo.WithinTx(ctx, func(ctx context.Context, tx portsrepo.StateReadWriter) error {
		if err := tx.PutState(ctx, key, []byte(`[{"amount":"1"}]`)); err != nil {
			return err
		}
		return apperrors.ErrIndexOutOfRange
	})
	assert.ErrorIs(t, err, apperrors.ErrIndexOutOfRange)
	has, err := repo.HasState(ctx, key)
	require.NoError(t, err)
	assert.False(t, has, "failed transaction must not persist")

	err = repo.WithinTx(ctx, func(ctx context.Context, tx portsrepo.StateReadWriter) error {
		return tx.PutState(ctx, key, []byte(`[{"amount":"170141183460469231731687303715884105727"}]`))
	})
	require.NoError(t, err)

	raw, err := repo.GetState(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"amount":"170141183460469231731687303715884105727"}]`, string(raw))
}

package mapping_test

import (
	"testing"

	"github.com/SscSPs/finance_ledger/internal/core/domain"
	"github.com/SscSPs/finance_ledger/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDocument_NilEncodesAsEmpty(t *testing.T) {
	raw, err := mapping.ToListDocument[domain.Asset](nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))

	assets, err := mapping.FromListDocument[domain.Asset]([]byte(`null`))
	require.NoError(t, err)
	assert.NotNil(t, assets)
	assert.Empty(t, assets)
}

func TestListDocument_KeepsFullAmountPrecision(t *testing.T) {
	goals := []domain.Goal{{
		Name:          "Vacation",
		TargetAmount:  domain.MaxAmount,
		CurrentAmount: decimal.NewFromInt(-1),
		Deadline:      1672531200,
	}}

	raw, err := mapping.ToListDocument(goals)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"170141183460469231731687303715884105727"`)

	decoded, err := mapping.FromListDocument[domain.Goal](raw)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.True(t, decoded[0].TargetAmount.Equal(domain.MaxAmount))
	assert.Equal(t, "-1", decoded[0].CurrentAmount.String())
	assert.Equal(t, uint64(1672531200), decoded[0].Deadline)
}

func TestAdminDocument(t *testing.T) {
	raw, err := mapping.ToAdminDocument("GADMIN")
	require.NoError(t, err)

	admin, err := mapping.FromAdminDocument(raw)
	require.NoError(t, err)
	assert.Equal(t, domain.Identity("GADMIN"), admin)

	_, err = mapping.FromAdminDocument([]byte(`{`))
	assert.Error(t, err)
}

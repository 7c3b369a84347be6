package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/finance_ledger/internal/apperrors"
	"github.com/SscSPs/finance_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "positive", input: "5000", want: "5000"},
		{name: "negative liability", input: "-2000", want: "-2000"},
		{name: "zero", input: "0", want: "0"},
		{name: "max i128", input: "170141183460469231731687303715884105727", want: "170141183460469231731687303715884105727"},
		{name: "min i128", input: "-170141183460469231731687303715884105728", want: "-170141183460469231731687303715884105728"},
		{name: "above max", input: "170141183460469231731687303715884105728", wantErr: apperrors.ErrValidation},
		{name: "below min", input: "-170141183460469231731687303715884105729", wantErr: apperrors.ErrValidation},
		{name: "fractional", input: "10.5", wantErr: apperrors.ErrValidation},
		{name: "not a number", input: "ten", wantErr: apperrors.ErrValidation},
		{name: "empty", input: "", wantErr: apperrors.ErrValidation},
		{name: "huge exponent", input: "1e100000000", wantErr: apperrors.ErrValidation},
		{name: "huge negative exponent", input: "1e-100000000", wantErr: apperrors.ErrValidation},
		{name: "small exponent", input: "5e3", wantErr: apperrors.ErrValidation},
		{name: "too many digits", input: "00000000000000000000000000000000000000001", wantErr: apperrors.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseAmount(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestValidateAmount_ExtremeExponents(t *testing.T) {
	start := time.Now()

	assert.ErrorIs(t, domain.ValidateAmount(decimal.New(1, 100000000)), apperrors.ErrValidation)
	assert.ErrorIs(t, domain.ValidateAmount(decimal.New(-7, 100000000)), apperrors.ErrValidation)
	assert.ErrorIs(t, domain.ValidateAmount(decimal.New(1, -100000000)), apperrors.ErrValidation)
	assert.NoError(t, domain.ValidateAmount(decimal.New(0, 100000000)))
	assert.NoError(t, domain.ValidateAmount(decimal.New(0, -100000000)))
	assert.ErrorIs(t, domain.ValidateAmount(decimal.New(15, -1)), apperrors.ErrValidation)
	assert.NoError(t, domain.ValidateAmount(decimal.New(1000, -2)))
	assert.False(t, domain.InAmountRange(decimal.New(1, 39)))
	assert.True(t, domain.InAmountRange(decimal.New(1, 38)))

	assert.Less(t, time.Since(start), time.Second)
}

func TestAddAmounts_Overflow(t *testing.T) {
	_, err := domain.AddAmounts(domain.MaxAmount, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, apperrors.ErrArithmeticOverflow)

	_, err = domain.AddAmounts(domain.MinAmount, decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, apperrors.ErrArithmeticOverflow)

	sum, err := domain.AddAmounts(domain.MaxAmount, decimal.NewFromInt(-1))
	require.NoError(t, err)
	assert.Equal(t, "170141183460469231731687303715884105726", sum.String())
}

func TestSumAmounts(t *testing.T) {
	sum, err := domain.SumAmounts(
		decimal.NewFromInt(5000),
		decimal.NewFromInt(10000),
		decimal.NewFromInt(3000),
		decimal.NewFromInt(-2000),
	)
	require.NoError(t, err)
	assert.Equal(t, "16000", sum.String())

	empty, err := domain.SumAmounts()
	require.NoError(t, err)
	assert.True(t, empty.IsZero())

	// The running total overflows before the negative term is reached.
	_, err = domain.SumAmounts(domain.MaxAmount, decimal.NewFromInt(1), decimal.NewFromInt(-5))
	assert.ErrorIs(t, err, apperrors.ErrArithmeticOverflow)
}

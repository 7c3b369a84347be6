package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/finance_ledger/internal/dto"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountValidation(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, dto.RegisterValidators(v))

	tests := []struct {
		name   string
		amount string
		valid  bool
	}{
		{"positive", "5000", true},
		{"negative", "-2000", true},
		{"max", "170141183460469231731687303715884105727", true},
		{"min", "-170141183460469231731687303715884105728", true},
		{"above max", "170141183460469231731687303715884105728", false},
		{"below min", "-170141183460469231731687303715884105729", false},
		{"fraction", "10.5", false},
		{"not a number", "lots", false},
		{"missing", "", false},
		{"exponent", "1e100000000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.AddAssetRequest{AssetType: "cash", Amount: json.Number(tt.amount)}
			err := v.Struct(req)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestRequestDecoding_AcceptsNumbersAndStrings(t *testing.T) {
	var fromNumber dto.UpdateGoalProgressRequest
	require.NoError(t, json.Unmarshal([]byte(`{"amountAdded": 1000}`), &fromNumber))
	amount, err := fromNumber.AmountAddedValue()
	require.NoError(t, err)
	assert.Equal(t, "1000", amount.String())

	var fromString dto.UpdateGoalProgressRequest
	require.NoError(t, json.Unmarshal([]byte(`{"amountAdded": "-170141183460469231731687303715884105728"}`), &fromString))
	amount, err = fromString.AmountAddedValue()
	require.NoError(t, err)
	assert.Equal(t, "-170141183460469231731687303715884105728", amount.String())
}

package dto

import (
	"github.com/SscSPs/finance_ledger/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

// AmountTag is the binding tag checking that a field holds a signed 128-bit integer.
const AmountTag = "i128"

// ValidateAmountField accepts a json.Number or string field that parses as an
// integer within the ledger amount range.
func ValidateAmountField(fl validator.FieldLevel) bool {
	_, err := domain.ParseAmount(fl.Field().String())
	return err == nil
}

// RegisterValidators installs the ledger's custom tags on v.
func RegisterValidators(v *validator.Validate) error {
	return v.RegisterValidation(AmountTag, ValidateAmountField)
}

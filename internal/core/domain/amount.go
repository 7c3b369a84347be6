package domain

import (
	"fmt"
	"math/big"

	"github.com/SscSPs/finance_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Ledger amounts are signed 128-bit integers. They are carried as decimals so
// the full range survives JSON and SQL round trips.
var (
	MaxAmount = decimal.RequireFromString("170141183460469231731687303715884105727")
	MinAmount = decimal.RequireFromString("-170141183460469231731687303715884105728")
)

// maxAmountDigits is the number of decimal digits in MinAmount and MaxAmount.
const maxAmountDigits = 39

// InAmountRange reports whether a fits the signed 128-bit range.
// Values with more integer digits than the bounds are rejected before any
// comparison, so huge exponents are never expanded.
func InAmountRange(a decimal.Decimal) bool {
	if a.IsZero() {
		return true
	}
	if integerDigits(a) > maxAmountDigits {
		return false
	}
	return !a.GreaterThan(MaxAmount) && !a.LessThan(MinAmount)
}

// ValidateAmount checks a caller-supplied amount: integral and within range.
func ValidateAmount(a decimal.Decimal) error {
	if !InAmountRange(a) {
		return fmt.Errorf("amount exceeds the signed 128-bit range: %w", apperrors.ErrValidation)
	}
	if a.IsZero() {
		return nil
	}
	// A non-zero value below one in magnitude is never integral.
	if integerDigits(a) <= 0 || !a.IsInteger() {
		return fmt.Errorf("amount is not an integer: %w", apperrors.ErrValidation)
	}
	return nil
}

// integerDigits is the count of coefficient digits shifted by the exponent,
// i.e. the number of digits left of the decimal point for |a| >= 1.
func integerDigits(a decimal.Decimal) int64 {
	c := a.Coefficient()
	return int64(len(c.Abs(c).String())) + int64(a.Exponent())
}

// ParseAmount parses a base-10 integer amount. Only an optional sign and
// digits are accepted; fractions and exponent notation are rejected.
func ParseAmount(s string) (decimal.Decimal, error) {
	if len(s) == 0 || len(s) > maxAmountDigits+1 {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, apperrors.ErrValidation)
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, apperrors.ErrValidation)
	}
	a := decimal.NewFromBigInt(n, 0)
	if err := ValidateAmount(a); err != nil {
		return decimal.Zero, err
	}
	return a, nil
}

// AddAmounts adds two amounts, failing when the result leaves the 128-bit range.
func AddAmounts(a, b decimal.Decimal) (decimal.Decimal, error) {
	sum := a.Add(b)
	if !InAmountRange(sum) {
		return decimal.Zero, fmt.Errorf("%s + %s: %w", a.String(), b.String(), apperrors.ErrArithmeticOverflow)
	}
	return sum, nil
}

// SumAmounts folds amounts left to right with AddAmounts, so an intermediate
// overflow fails even if a later term would bring the total back into range.
func SumAmounts(amounts ...decimal.Decimal) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, a := range amounts {
		var err error
		total, err = AddAmounts(total, a)
		if err != nil {
			return decimal.Zero, err
		}
	}
	return total, nil
}

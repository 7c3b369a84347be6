package domain

import (
	"github.com/shopspring/decimal"
)

// Asset is one holding (or, with a negative amount, a liability) of an owner.
// Assets have no identifier; they are addressed by position in the owner's list.
type Asset struct {
	AssetType   string          `json:"assetType"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// Transaction is an immutable ledger entry. Timestamp comes from the ledger
// clock at record time, never from the caller.
type Transaction struct {
	Timestamp       uint64          `json:"timestamp"`
	TransactionType string          `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
}

// Goal is a savings target. CurrentAmount starts at zero and only moves through
// progress increments; it is neither clamped at zero nor at TargetAmount.
type Goal struct {
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      uint64          `json:"deadline"`
}

// LedgerSummary is every list of one owner plus the net worth, read together.
type LedgerSummary struct {
	Owner        Identity        `json:"owner"`
	Assets       []Asset         `json:"assets"`
	Transactions []Transaction   `json:"transactions"`
	Goals        []Goal          `json:"goals"`
	NetWorth     decimal.Decimal `json:"netWorth"`
}

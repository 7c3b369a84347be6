package dto

import (
	"encoding/json"

	"github.com/SscSPs/finance_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Amounts travel as JSON numbers or numeric strings on the way in and as
// strings on the way out; a float64 cannot hold the 128-bit range.

// InitializeLedgerRequest defines the data needed to install the administrator.
type InitializeLedgerRequest struct {
	Admin string `json:"admin" binding:"required"`
}

// InitializeLedgerResponse echoes the installed administrator.
type InitializeLedgerResponse struct {
	Admin string `json:"admin"`
}

// AdminStatusResponse reports whether an identity is the administrator.
type AdminStatusResponse struct {
	Identity string `json:"identity"`
	IsAdmin  bool   `json:"isAdmin"`
}

// AddAssetRequest defines the data needed to append an asset.
type AddAssetRequest struct {
	AssetType   string      `json:"assetType"`
	Amount      json.Number `json:"amount" binding:"required,i128" swaggertype:"string" example:"5000"`
	Description string      `json:"description"`
}

// AmountValue returns the validated amount.
func (r AddAssetRequest) AmountValue() (decimal.Decimal, error) {
	return domain.ParseAmount(r.Amount.String())
}

// AssetResponse defines the data returned for an asset.
type AssetResponse struct {
	AssetType   string `json:"assetType"`
	Amount      string `json:"amount" example:"5000"`
	Description string `json:"description"`
}

// RecordTransactionRequest defines the data needed to record a transaction.
// The timestamp is never accepted from the caller.
type RecordTransactionRequest struct {
	TransactionType string      `json:"transactionType"`
	Amount          json.Number `json:"amount" binding:"required,i128" swaggertype:"string" example:"-250"`
	Description     string      `json:"description"`
}

// AmountValue returns the validated amount.
func (r RecordTransactionRequest) AmountValue() (decimal.Decimal, error) {
	return domain.ParseAmount(r.Amount.String())
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	Timestamp       uint64 `json:"timestamp"`
	TransactionType string `json:"transactionType"`
	Amount          string `json:"amount" example:"-250"`
	Description     string `json:"description"`
}

// CreateGoalRequest defines the data needed to create a savings goal.
type CreateGoalRequest struct {
	Name         string      `json:"name"`
	TargetAmount json.Number `json:"targetAmount" binding:"required,i128" swaggertype:"string" example:"5000"`
	Deadline     uint64      `json:"deadline" example:"1672531200"`
}

// TargetAmountValue returns the validated target amount.
func (r CreateGoalRequest) TargetAmountValue() (decimal.Decimal, error) {
	return domain.ParseAmount(r.TargetAmount.String())
}

// UpdateGoalProgressRequest defines the increment applied to a goal.
// Negative increments are allowed.
type UpdateGoalProgressRequest struct {
	AmountAdded json.Number `json:"amountAdded" binding:"required,i128" swaggertype:"string" example:"1000"`
}

// AmountAddedValue returns the validated increment.
func (r UpdateGoalProgressRequest) AmountAddedValue() (decimal.Decimal, error) {
	return domain.ParseAmount(r.AmountAdded.String())
}

// GoalResponse defines the data returned for a goal.
type GoalResponse struct {
	Index         int    `json:"index"`
	Name          string `json:"name"`
	TargetAmount  string `json:"targetAmount" example:"5000"`
	CurrentAmount string `json:"currentAmount" example:"1000"`
	Deadline      uint64 `json:"deadline"`
}

// NetWorthResponse defines the rollup returned for an owner.
type NetWorthResponse struct {
	Owner    string `json:"owner"`
	NetWorth string `json:"netWorth" example:"16000"`
}

// LedgerSummaryResponse defines every list of an owner plus the net worth.
type LedgerSummaryResponse struct {
	Owner        string                `json:"owner"`
	Assets       []AssetResponse       `json:"assets"`
	Transactions []TransactionResponse `json:"transactions"`
	Goals        []GoalResponse        `json:"goals"`
	NetWorth     string                `json:"netWorth"`
}

// ToAssetResponse converts a domain.Asset to AssetResponse DTO
func ToAssetResponse(a domain.Asset) AssetResponse {
	return AssetResponse{
		AssetType:   a.AssetType,
		Amount:      a.Amount.String(),
		Description: a.Description,
	}
}

// ToListAssetResponse converts a slice of domain.Asset, never returning nil.
func ToListAssetResponse(assets []domain.Asset) []AssetResponse {
	res := make([]AssetResponse, len(assets))
	for i, a := range assets {
		res[i] = ToAssetResponse(a)
	}
	return res
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		Timestamp:       t.Timestamp,
		TransactionType: t.TransactionType,
		Amount:          t.Amount.String(),
		Description:     t.Description,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction, never returning nil.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		res[i] = ToTransactionResponse(t)
	}
	return res
}

// ToGoalResponse converts the goal at position index.
func ToGoalResponse(index int, g domain.Goal) GoalResponse {
	return GoalResponse{
		Index:         index,
		Name:          g.Name,
		TargetAmount:  g.TargetAmount.String(),
		CurrentAmount: g.CurrentAmount.String(),
		Deadline:      g.Deadline,
	}
}

// ToListGoalResponse converts a slice of domain.Goal, never returning nil.
func ToListGoalResponse(goals []domain.Goal) []GoalResponse {
	res := make([]GoalResponse, len(goals))
	for i, g := range goals {
		res[i] = ToGoalResponse(i, g)
	}
	return res
}

// ToLedgerSummaryResponse converts a domain.LedgerSummary to LedgerSummaryResponse DTO
func ToLedgerSummaryResponse(s *domain.LedgerSummary) LedgerSummaryResponse {
	return LedgerSummaryResponse{
		Owner:        s.Owner.String(),
		Assets:       ToListAssetResponse(s.Assets),
		Transactions: ToListTransactionResponse(s.Transactions),
		Goals:        ToListGoalResponse(s.Goals),
		NetWorth:     s.NetWorth.String(),
	}
}

package services

import (
	"context"

	"github.com/SscSPs/finance_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// IdentityAuthorizer is the "prove you are this identity" capability consulted
// before every mutation. It returns apperrors.ErrUnauthorized when the caller
// cannot prove it is identity.
type IdentityAuthorizer interface {
	RequireAuth(ctx context.Context, identity domain.Identity) error
}

// LedgerClock is the host clock that stamps recorded transactions.
type LedgerClock interface {
	// Now returns the current ledger time in Unix seconds.
	Now(ctx context.Context) uint64
}

// LedgerAdminSvc defines operations on the administrator singleton
type LedgerAdminSvc interface {
	// Initialize installs admin as the administrator. It succeeds at most once per deployment.
	Initialize(ctx context.Context, admin domain.Identity) error

	// IsAdmin reports whether user is the installed administrator.
	// It fails with apperrors.ErrNotInitialized before Initialize has run.
	IsAdmin(ctx context.Context, user domain.Identity) (bool, error)
}

// AssetSvc defines asset operations
type AssetSvc interface {
	// AddAsset appends an asset to user's list.
	AddAsset(ctx context.Context, user domain.Identity, assetType string, amount decimal.Decimal, description string) error

	// GetAssets returns user's assets in insertion order.
	GetAssets(ctx context.Context, user domain.Identity) ([]domain.Asset, error)
}

// TransactionSvc defines transaction operations
type TransactionSvc interface {
	// RecordTransaction appends a transaction stamped with the ledger clock.
	RecordTransaction(ctx context.Context, user domain.Identity, transactionType string, amount decimal.Decimal, description string) error

	// GetTransactions returns user's transactions in insertion order.
	GetTransactions(ctx context.Context, user domain.Identity) ([]domain.Transaction, error)
}

// GoalSvc defines savings goal operations
type GoalSvc interface {
	// CreateGoal appends a goal with zero progress.
	CreateGoal(ctx context.Context, user domain.Identity, name string, targetAmount decimal.Decimal, deadline uint64) error

	// UpdateGoalProgress adds amountAdded to the goal at goalIndex.
	UpdateGoalProgress(ctx context.Context, user domain.Identity, goalIndex uint32, amountAdded decimal.Decimal) error

	// GetGoals returns user's goals in insertion order.
	GetGoals(ctx context.Context, user domain.Identity) ([]domain.Goal, error)
}

// NetWorthSvc defines rollups over an owner's ledger
type NetWorthSvc interface {
	// CalculateNetWorth sums the amounts of user's assets.
	CalculateNetWorth(ctx context.Context, user domain.Identity) (decimal.Decimal, error)

	// GetSummary reads every list of user together with the net worth.
	GetSummary(ctx context.Context, user domain.Identity) (*domain.LedgerSummary, error)
}

// LedgerSvcFacade combines all ledger service interfaces
// This is a facade for clients that need access to all operations
type LedgerSvcFacade interface {
	LedgerAdminSvc
	AssetSvc
	TransactionSvc
	GoalSvc
	NetWorthSvc
}

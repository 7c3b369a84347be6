package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/finance_ledger/internal/apperrors"
	"github.com/SscSPs/finance_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_ledger/internal/core/ports/services"
	"github.com/SscSPs/finance_ledger/internal/platform/clock"
	"github.com/SscSPs/finance_ledger/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

// ledgerService implements the LedgerSvcFacade interface. It holds no state of
// its own: every call loads what it needs from the state repository.
type ledgerService struct {
	BaseService
	stateRepo portsrepo.StateRepositoryFacade
	clock     portssvc.LedgerClock
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithAuthorizer sets the capability asked for proof of identity before mutations.
func WithAuthorizer(authorizer portssvc.IdentityAuthorizer) LedgerServiceOption {
	return func(s *ledgerService) {
		s.Authorizer = authorizer
	}
}

// WithClock sets the clock that stamps recorded transactions.
func WithClock(c portssvc.LedgerClock) LedgerServiceOption {
	return func(s *ledgerService) {
		s.clock = c
	}
}

// NewLedgerService creates a new ledger service. Unless overridden it trusts
// the identity proven in the request context and stamps with the system clock.
func NewLedgerService(repo portsrepo.StateRepositoryFacade, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		BaseService: BaseService{Authorizer: NewContextAuthorizer()},
		stateRepo:   repo,
		clock:       clock.SystemClock{},
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure ledgerService implements the LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// loadList reads the list stored under key. An absent key yields an empty
// list; found tells the two apart for the one caller that cares.
func loadList[T any](ctx context.Context, r portsrepo.StateReader, key domain.StorageKey) (items []T, found bool, err error) {
	raw, err := r.GetState(ctx, key)
	if errors.Is(err, apperrors.ErrNotFound) {
		return []T{}, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	items, err = mapping.FromListDocument[T](raw)
	if err != nil {
		return nil, false, fmt.Errorf("corrupt document at %s: %w", key, err)
	}
	return items, true, nil
}

// storeList writes the whole list back under key.
func storeList[T any](ctx context.Context, w portsrepo.StateWriter, key domain.StorageKey, items []T) error {
	raw, err := mapping.ToListDocument(items)
	if err != nil {
		return err
	}
	return w.PutState(ctx, key, raw)
}

// appendToList performs load-or-default, append at the tail, store back.
func appendToList[T any](ctx context.Context, tx portsrepo.StateReadWriter, key domain.StorageKey, item T) (int, error) {
	items, _, err := loadList[T](ctx, tx, key)
	if err != nil {
		return 0, err
	}
	items = append(items, item)
	if err := storeList(ctx, tx, key, items); err != nil {
		return 0, err
	}
	return len(items), nil
}

func (s *ledgerService) Initialize(ctx context.Context, admin domain.Identity) error {
	if err := admin.Validate(); err != nil {
		return err
	}

	err := s.stateRepo.WithinTx(ctx, func(ctx context.Context, tx portsrepo.StateReadWriter) error {
		exists, err := tx.HasState(ctx, domain.AdminKey())
		if err != nil {
			return err
		}
		if exists {
			return apperrors.ErrAlreadyInitialized
		}

		if err := s.RequireAuth(ctx, admin); err != nil {
			return err
		}

		raw, err := mapping.ToAdminDocument(admin)
		if err != nil {
			return err
		}
		return tx.PutState(ctx, domain.AdminKey(), raw)
	})
	if err != nil {
		s.logRejection(ctx, err, "Failed to initialize ledger", slog.String("admin", admin.String()))
		return err
	}

	s.LogInfo(ctx, "Ledger initialized", slog.String("admin", admin.String()))
	return nil
}

func (s *ledgerService) IsAdmin(ctx context.Context, user domain.Identity) (bool, error) {
	raw, err := s.stateRepo.GetState(ctx, domain.AdminKey())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, apperrors.ErrNotInitialized
		}
		s.LogError(ctx, err, "Failed to load admin")
		return false, err
	}

	admin, err := mapping.FromAdminDocument(raw)
	if err != nil {
		s.LogError(ctx, err, "Failed to decode admin")
		return false, err
	}
	return admin == user, nil
}

func (s *ledgerService) AddAsset(ctx context.Context, user domain.Identity, assetType string, amount decimal.Decimal, description string) error {
	asset := domain.Asset{
		AssetType:   assetType,
		Amount:      amount,
		Description: description,
	}

	var count int
	err := s.stateRepo.WithinTx(ctx, func(ctx context.Context, tx portsrepo.StateReadWriter) error {
		if err := s.RequireAuth(ctx, user); err != nil {
			return err
		}
		if err := s.validateMutation(user, amount); err != nil {
			return err
		}
		var err error
		count, err = appendToList(ctx, tx, domain.AssetsKey(user), asset)
		return err
	})
	if err != nil {
		s.logRejection(ctx, err, "Failed to add asset", slog.String("owner", user.String()))
		return err
	}

	s.LogInfo(ctx, "Asset added",
		slog.String("owner", user.String()),
		slog.String("asset_type", assetType),
		slog.Int("asset_count", count))
	return nil
}

func (s *ledgerService) GetAssets(ctx context.Context, user domain.Identity) ([]domain.Asset, error) {
	assets, _, err := loadList[domain.Asset](ctx, s.stateRepo, domain.AssetsKey(user))
	if err != nil {
		s.LogError(ctx, err, "Failed to load assets", slog.String("owner", user.String()))
		return nil, err
	}
	return assets, nil
}

func (s *ledgerService) RecordTransaction(ctx context.Context, user domain.Identity, transactionType string, amount decimal.Decimal, description string) error {
	var count int
	err := s.stateRepo.WithinTx(ctx, func(ctx context.Context, tx portsrepo.StateReadWriter) error {
		if err := s.RequireAuth(ctx, user); err != nil {
			return err
		}
		if err := s.validateMutation(user, amount); err != nil {
			return err
		}
		txn := domain.Transaction{
			Timestamp:       s.clock.Now(ctx),
			TransactionType: transactionType,
			Amount:          amount,
			Description:     description,
		}
		var err error
		count, err = appendToList(ctx, tx, domain.TransactionsKey(user), txn)
		return err
	})
	if err != nil {
		s.logRejection(ctx, err, "Failed to record transaction", slog.String("owner", user.String()))
		return err
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("owner", user.String()),
		slog.String("transaction_type", transactionType),
		slog.Int("transaction_count", count))
	return nil
}

func (s *ledgerService) GetTransactions(ctx context.Context, user domain.Identity) ([]domain.Transaction, error) {
	txns, _, err := loadList[domain.Transaction](ctx, s.stateRepo, domain.TransactionsKey(user))
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions", slog.String("owner", user.String()))
		return nil, err
	}
	return txns, nil
}

func (s *ledgerService) CreateGoal(ctx context.Context, user domain.Identity, name string, targetAmount decimal.Decimal, deadline uint64) error {
	goal := domain.Goal{
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: decimal.Zero,
		Deadline:      deadline,
	}

	var count int
	err := s.stateRepo.WithinTx(ctx, func(ctx context.Context, tx portsrepo.StateReadWriter) error {
		if err := s.RequireAuth(ctx, user); err != nil {
			return err
		}
		if err := s.validateMutation(user, targetAmount); err != nil {
			return err
		}
		var err error
		count, err = appendToList(ctx, tx, domain.GoalsKey(user), goal)
		return err
	})
	if err != nil {
		s.logRejection(ctx, err, "Failed to create goal", slog.String("owner", user.String()))
		return err
	}

	s.LogInfo(ctx, "Goal created",
		slog.String("owner", user.String()),
		slog.String("goal_name", name),
		slog.Int("goal_count", count))
	return nil
}

// UpdateGoalProgress is the one operation where an absent list is an error
// rather than an empty list. The whole list is rewritten after the update.
func (s *ledgerService) UpdateGoalProgress(ctx context.Context, user domain.Identity, goalIndex uint32, amountAdded decimal.Decimal) error {
	var updated domain.Goal
	err := s.stateRepo.WithinTx(ctx, func(ctx context.Context, tx portsrepo.StateReadWriter) error {
		if err := s.RequireAuth(ctx, user); err != nil {
			return err
		}
		if err := s.validateMutation(user, amountAdded); err != nil {
			return err
		}

		key := domain.GoalsKey(user)
		goals, found, err := loadList[domain.Goal](ctx, tx, key)
		if err != nil {
			return err
		}
		if !found {
			return apperrors.ErrMissingGoals
		}
		if uint64(goalIndex) >= uint64(len(goals)) {
			return fmt.Errorf("goal %d of %d: %w", goalIndex, len(goals), apperrors.ErrIndexOutOfRange)
		}

		current, err := domain.AddAmounts(goals[goalIndex].CurrentAmount, amountAdded)
		if err != nil {
			return err
		}
		goals[goalIndex].CurrentAmount = current
		updated = goals[goalIndex]

		return storeList(ctx, tx, key, goals)
	})
	if err != nil {
		s.logRejection(ctx, err, "Failed to update goal progress",
			slog.String("owner", user.String()),
			slog.Uint64("goal_index", uint64(goalIndex)))
		return err
	}

	s.LogInfo(ctx, "Goal progress updated",
		slog.String("owner", user.String()),
		slog.Uint64("goal_index", uint64(goalIndex)),
		slog.String("current_amount", updated.CurrentAmount.String()))
	return nil
}

func (s *ledgerService) GetGoals(ctx context.Context, user domain.Identity) ([]domain.Goal, error) {
	goals, _, err := loadList[domain.Goal](ctx, s.stateRepo, domain.GoalsKey(user))
	if err != nil {
		s.LogError(ctx, err, "Failed to load goals", slog.String("owner", user.String()))
		return nil, err
	}
	return goals, nil
}

func (s *ledgerService) CalculateNetWorth(ctx context.Context, user domain.Identity) (decimal.Decimal, error) {
	assets, err := s.GetAssets(ctx, user)
	if err != nil {
		return decimal.Zero, err
	}
	return netWorth(assets)
}

// GetSummary reads all three lists inside one transaction so they reflect the
// same point in the ledger's history.
func (s *ledgerService) GetSummary(ctx context.Context, user domain.Identity) (*domain.LedgerSummary, error) {
	summary := &domain.LedgerSummary{Owner: user}
	err := s.stateRepo.WithinTx(ctx, func(ctx context.Context, tx portsrepo.StateReadWriter) error {
		var err error
		if summary.Assets, _, err = loadList[domain.Asset](ctx, tx, domain.AssetsKey(user)); err != nil {
			return err
		}
		if summary.Transactions, _, err = loadList[domain.Transaction](ctx, tx, domain.TransactionsKey(user)); err != nil {
			return err
		}
		if summary.Goals, _, err = loadList[domain.Goal](ctx, tx, domain.GoalsKey(user)); err != nil {
			return err
		}
		summary.NetWorth, err = netWorth(summary.Assets)
		return err
	})
	if err != nil {
		s.logRejection(ctx, err, "Failed to build ledger summary", slog.String("owner", user.String()))
		return nil, err
	}
	s.LogDebug(ctx, "Ledger summary read",
		slog.String("owner", user.String()),
		slog.Int("assets", len(summary.Assets)),
		slog.Int("transactions", len(summary.Transactions)),
		slog.Int("goals", len(summary.Goals)))
	return summary, nil
}

func netWorth(assets []domain.Asset) (decimal.Decimal, error) {
	amounts := make([]decimal.Decimal, len(assets))
	for i, asset := range assets {
		amounts[i] = asset.Amount
	}
	return domain.SumAmounts(amounts...)
}

// validateMutation rejects arguments no stored value could represent.
// It runs after RequireAuth so an unproven caller always sees ErrUnauthorized.
func (s *ledgerService) validateMutation(user domain.Identity, amount decimal.Decimal) error {
	if err := user.Validate(); err != nil {
		return err
	}
	return domain.ValidateAmount(amount)
}

// logRejection logs caller errors at warn level and everything else at error level.
func (s *ledgerService) logRejection(ctx context.Context, err error, msg string, keyvals ...any) {
	switch {
	case errors.Is(err, apperrors.ErrUnauthorized),
		errors.Is(err, apperrors.ErrAlreadyInitialized),
		errors.Is(err, apperrors.ErrMissingGoals),
		errors.Is(err, apperrors.ErrIndexOutOfRange),
		errors.Is(err, apperrors.ErrArithmeticOverflow),
		errors.Is(err, apperrors.ErrValidation):
		s.LogWarn(ctx, err, msg, keyvals...)
	default:
		s.LogError(ctx, err, msg, keyvals...)
	}
}

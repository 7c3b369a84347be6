// Package repositories selects the ledger state store named by configuration.
package repositories

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/finance_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/finance_ledger/internal/platform/config"
	"github.com/SscSPs/finance_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/finance_ledger/internal/repositories/memory"
	"github.com/SscSPs/finance_ledger/pkg/database"
)

// Open builds the repository provider for cfg.StorageDriver. The returned
// close function releases whatever the store holds and is never nil.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		logger.Warn("Using in-memory ledger store; state is lost on exit")
		return portsrepo.RepositoryProvider{StateRepo: memory.NewStateRepository()}, func() {}, nil

	case config.StorageDriverPostgres:
		if cfg.DatabaseURL == "" {
			return portsrepo.RepositoryProvider{}, func() {}, fmt.Errorf("PGSQL_URL is required for storage driver %q", cfg.StorageDriver)
		}
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			return portsrepo.RepositoryProvider{}, func() {}, err
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, func() {}, err
		}
		logger.Info("Database connection pool established.")
		return pgsql.NewRepositoryProvider(pool), func() { database.ClosePgxPool(pool) }, nil

	default:
		return portsrepo.RepositoryProvider{}, func() {}, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

package repositories

import (
	"context"
)

// TxFunc is the body of a storage transaction. It must do all of its reads and
// writes through repo, which observes its own uncommitted writes.
type TxFunc func(ctx context.Context, repo StateReadWriter) error

// TransactionManager defines methods for transaction management
type TransactionManager interface {
	// WithinTx runs fn atomically. Calls are serialized against each other:
	// one transaction fully completes before the next begins. Writes are
	// committed only when fn returns nil; any error discards all of them.
	WithinTx(ctx context.Context, fn TxFunc) error
}

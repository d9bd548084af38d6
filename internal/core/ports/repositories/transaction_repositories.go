package repositories

import (
	"context"

	"github.com/cashbox-app/cashbox_backend/internal/core/domain"
)

// TransactionReader defines read operations over the transaction log
type TransactionReader interface {
	// ListTransactions retrieves a paginated list of transactions, newest
	// first, using token-based pagination. It returns the transactions, a
	// token for the next page, and an error.
	ListTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// FindTransactionByID retrieves a single transaction record.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
}

// TransactionWriter defines the append-only write operations for the log.
// There is deliberately no update or delete: transactions are immutable and a
// correction requires a new compensating transaction.
type TransactionWriter interface {
	// SaveTransaction appends the transaction record and applies its balance
	// changes to the referenced ledgers as one atomic storage transaction.
	// When enforceNonNegative is set, the write fails with
	// apperrors.ErrInsufficientBalance if any resulting balance would be
	// negative.
	SaveTransaction(ctx context.Context, txn domain.Transaction, changes domain.BalanceChanges, enforceNonNegative bool) error

	// SaveInitialBalance appends an INITIAL_BALANCE transaction and sets the
	// target ledger's balance to the absolute amount, atomically.
	SaveInitialBalance(ctx context.Context, txn domain.Transaction, target domain.LedgerRef) error
}

// TransactionRepositoryFacade combines the log's repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends TransactionRepositoryFacade with
// storage transaction capabilities
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}

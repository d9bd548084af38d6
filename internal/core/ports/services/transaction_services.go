package services

import (
	"context"

	"github.com/cashbox-app/cashbox_backend/internal/core/domain"
	"github.com/cashbox-app/cashbox_backend/internal/dto"
)

// TransactionSvcFacade is the balance-mutation engine's surface. It is the
// only writer of ledger balances; every balance change it makes is recorded
// as exactly one immutable transaction, atomically.
type TransactionSvcFacade interface {
	// CreateTransaction validates the request, computes the ledger deltas for
	// its type and applies them together with the log append as one atomic
	// unit. Returns the stored transaction.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error)

	// SetInitialBalance sets a ledger's balance to an absolute amount and
	// records a single INITIAL_BALANCE transaction for it.
	SetInitialBalance(ctx context.Context, req dto.SetInitialBalanceRequest, creatorUserID string) error

	// ListTransactions returns the log newest first with token pagination.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// GetTransactionByID returns a single log record.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
}

package repositories

import (
	"context"
	"time"

	"github.com/cashbox-app/cashbox_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// PartyReader defines read operations for party data
type PartyReader interface {
	// FindPartyByID retrieves a specific party by its unique identifier,
	// regardless of kind or status.
	FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error)

	// ListParties retrieves parties of one kind sorted by name.
	// When activeOnly is true, inactive parties are excluded.
	ListParties(ctx context.Context, partyType domain.PartyType, activeOnly bool) ([]domain.Party, error)
}

// PartyWriter defines write operations for party data
type PartyWriter interface {
	// SaveParty persists a new party.
	SaveParty(ctx context.Context, party domain.Party) error

	// DeactivateParty marks a party as inactive. The balance is untouched and
	// historical transactions keep referencing the party.
	DeactivateParty(ctx context.Context, partyID string, partyType domain.PartyType, userID string, now time.Time) error
}

// PartyTransactionSupport defines operations used while applying a transaction.
// Balances move only through these, inside a storage transaction.
type PartyTransactionSupport interface {
	// FindPartiesByIDsForUpdate selects parties and locks them for update within a transaction.
	FindPartiesByIDsForUpdate(ctx context.Context, tx pgx.Tx, partyIDs []string) (map[string]domain.Party, error)

	// UpdatePartyBalancesInTx applies signed deltas to multiple parties within a given transaction.
	UpdatePartyBalancesInTx(ctx context.Context, tx pgx.Tx, deltas map[string]decimal.Decimal, userID string, now time.Time) error

	// SetPartyBalanceInTx sets a party balance to an absolute amount within a given transaction.
	SetPartyBalanceInTx(ctx context.Context, tx pgx.Tx, partyID string, amount decimal.Decimal, userID string, now time.Time) error
}

// PartyRepositoryFacade combines all party-related repository interfaces
type PartyRepositoryFacade interface {
	PartyReader
	PartyWriter
	PartyTransactionSupport
}

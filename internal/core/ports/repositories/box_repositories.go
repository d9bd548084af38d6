package repositories

import (
	"context"
	"time"

	"github.com/cashbox-app/cashbox_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// BoxReader defines read operations for box data
type BoxReader interface {
	// FindBoxByID retrieves a specific box by its unique identifier.
	FindBoxByID(ctx context.Context, boxID string) (*domain.Box, error)

	// ListBoxes retrieves all boxes sorted by name.
	ListBoxes(ctx context.Context) ([]domain.Box, error)

	// CountBoxes returns the number of boxes; used for idempotent seeding.
	CountBoxes(ctx context.Context) (int64, error)
}

// BoxWriter defines write operations for box data
type BoxWriter interface {
	// SaveBox persists a new box. Only the seeding path creates boxes.
	SaveBox(ctx context.Context, box domain.Box) error
}

// BoxTransactionSupport defines operations used while applying a transaction.
// Balances move only through these, inside a storage transaction.
type BoxTransactionSupport interface {
	// FindBoxesByIDsForUpdate selects boxes and locks them for update within a transaction.
	FindBoxesByIDsForUpdate(ctx context.Context, tx pgx.Tx, boxIDs []string) (map[string]domain.Box, error)

	// UpdateBoxBalancesInTx applies signed deltas to multiple boxes within a given transaction.
	UpdateBoxBalancesInTx(ctx context.Context, tx pgx.Tx, deltas map[string]decimal.Decimal, userID string, now time.Time) error

	// SetBoxBalanceInTx sets a box balance to an absolute amount within a given transaction.
	SetBoxBalanceInTx(ctx context.Context, tx pgx.Tx, boxID string, amount decimal.Decimal, userID string, now time.Time) error
}

// BoxRepositoryFacade combines all box-related repository interfaces
type BoxRepositoryFacade interface {
	BoxReader
	BoxWriter
	BoxTransactionSupport
}

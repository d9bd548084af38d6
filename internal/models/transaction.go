package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors domain.TransactionType for storage.
type TransactionType string

// Transaction is the database representation of one immutable ledger event.
// Rows are insert-only; there is no update or delete path.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	TransactionDate time.Time       `db:"transaction_date"`
	TransactionType TransactionType `db:"transaction_type"`
	Amount          decimal.Decimal `db:"amount"` // NUMERIC(15,2), non-negative
	Description     string          `db:"description"`
	BoxID           *string         `db:"box_id"`        // Nullable
	TargetBoxID     *string         `db:"target_box_id"` // Nullable, transfers only
	PartyID         *string         `db:"party_id"`      // Nullable
	AuditFields
}

package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// LedgerKind distinguishes the three kinds of balance-carrying ledgers.
type LedgerKind string

const (
	LedgerBox      LedgerKind = "BOX"
	LedgerClient   LedgerKind = "CLIENT"
	LedgerProvider LedgerKind = "PROVIDER"
)

// LedgerRef points at a single ledger, either a box or a party.
type LedgerRef struct {
	Kind LedgerKind `json:"kind"`
	ID   string     `json:"id"`
}

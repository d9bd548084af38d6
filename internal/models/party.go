package models

import "github.com/shopspring/decimal"

// PartyType mirrors domain.PartyType for storage.
type PartyType string

// PartyStatus mirrors domain.PartyStatus for storage.
type PartyStatus string

// Party is the database representation of a client or provider.
type Party struct {
	PartyID   string          `db:"party_id"`
	Name      string          `db:"name"`
	PartyType PartyType       `db:"party_type"`
	Balance   decimal.Decimal `db:"balance"` // NUMERIC(15,2)
	Status    PartyStatus     `db:"status"`
	AuditFields
}

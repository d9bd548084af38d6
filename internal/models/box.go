package models

import "github.com/shopspring/decimal"

// BoxType mirrors domain.BoxType for storage.
type BoxType string

// Box is the database representation of a money box.
type Box struct {
	BoxID   string          `db:"box_id"`
	Name    string          `db:"name"`
	BoxType BoxType         `db:"box_type"`
	Balance decimal.Decimal `db:"balance"` // NUMERIC(15,2)
	AuditFields
}

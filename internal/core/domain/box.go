package domain

import "github.com/shopspring/decimal"

// BoxType identifies which kind of money container a box is.
type BoxType string

const (
	BoxCash      BoxType = "CASH"
	BoxChecks    BoxType = "CHECKS"
	BoxTransfers BoxType = "TRANSFERS"
)

// Box represents a physical or logical money container with a running balance.
// Boxes are created at seed time and are never deleted; their balances move
// only through the transaction service.
type Box struct {
	BoxID   string          `json:"boxID"`
	Name    string          `json:"name"`
	BoxType BoxType         `json:"boxType"`
	Balance decimal.Decimal `json:"balance"`
	AuditFields
}

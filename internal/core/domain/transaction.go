package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the closed set of recognized balance-affecting events.
type TransactionType string

const (
	Sale           TransactionType = "SALE"
	Collection     TransactionType = "COLLECTION"
	Purchase       TransactionType = "PURCHASE"
	Payment        TransactionType = "PAYMENT"
	Transfer       TransactionType = "TRANSFER"
	Income         TransactionType = "INCOME"
	Expense        TransactionType = "EXPENSE"
	InitialBalance TransactionType = "INITIAL_BALANCE"
)

// IsValid reports whether t is one of the recognized transaction types.
func (t TransactionType) IsValid() bool {
	switch t {
	case Sale, Collection, Purchase, Payment, Transfer, Income, Expense, InitialBalance:
		return true
	}
	return false
}

// DefaultDescription is used when a transaction request carries no description.
func (t TransactionType) DefaultDescription() string {
	switch t {
	case Sale:
		return "Sale"
	case Collection:
		return "Collection"
	case Purchase:
		return "Purchase"
	case Payment:
		return "Payment"
	case Transfer:
		return "Box transfer"
	case Income:
		return "Income"
	case Expense:
		return "Expense"
	case InitialBalance:
		return "Initial balance"
	}
	return string(t)
}

// Transaction is an immutable record of one balance-affecting event.
// Once stored it is never updated or deleted; a correction requires a new
// compensating transaction.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`
	TransactionDate time.Time       `json:"transactionDate"` // Assigned at creation
	TransactionType TransactionType `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"` // Non-negative
	Description     string          `json:"description"`
	BoxID           *string         `json:"boxID,omitempty"`       // Source box
	TargetBoxID     *string         `json:"targetBoxID,omitempty"` // Transfers only
	PartyID         *string         `json:"partyID,omitempty"`
	AuditFields
}

// BalanceChanges is the set of signed deltas one transaction applies to the
// ledgers it references. It is applied atomically with the log append.
type BalanceChanges struct {
	Boxes   map[string]decimal.Decimal
	Parties map[string]decimal.Decimal
}

// IsEmpty reports whether no ledger would move.
func (c BalanceChanges) IsEmpty() bool {
	return len(c.Boxes) == 0 && len(c.Parties) == 0
}

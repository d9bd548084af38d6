package dto

import (
	"time"

	"github.com/cashbox-app/cashbox_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// The reference fields required depend on the type; the service validates
// them. INITIAL_BALANCE is not accepted here, it has its own endpoint.
type CreateTransactionRequest struct {
	Type        domain.TransactionType `json:"type" binding:"required,oneof=SALE COLLECTION PURCHASE PAYMENT TRANSFER INCOME EXPENSE"`
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	Description string                 `json:"description"` // Optional, defaults per type
	BoxID       *string                `json:"boxID"`
	TargetBoxID *string                `json:"targetBoxID"` // TRANSFER only
	PartyID     *string                `json:"partyID"`
}

// SetInitialBalanceRequest sets a ledger balance to an absolute amount.
type SetInitialBalanceRequest struct {
	LedgerID string            `json:"ledgerID" binding:"required"`
	Kind     domain.LedgerKind `json:"kind" binding:"required,oneof=BOX CLIENT PROVIDER"`
	Amount   decimal.Decimal   `json:"amount" binding:"required"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string          `json:"transactionID"`
	TransactionDate time.Time       `json:"transactionDate"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	BoxID           *string         `json:"boxID,omitempty"`
	TargetBoxID     *string         `json:"targetBoxID,omitempty"`
	PartyID         *string         `json:"partyID,omitempty"`
	CreatedBy       string          `json:"createdBy"`
}

// ListTransactionsParams defines query parameters for listing the log.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse wraps a page of transactions, newest first.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		TransactionDate: txn.TransactionDate,
		Type:            string(txn.TransactionType),
		Amount:          txn.Amount,
		Description:     txn.Description,
		BoxID:           txn.BoxID,
		TargetBoxID:     txn.TargetBoxID,
		PartyID:         txn.PartyID,
		CreatedBy:       txn.CreatedBy,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}

package domain

import "github.com/shopspring/decimal"

// PartyType identifies the counterparty kind.
type PartyType string

const (
	PartyClient   PartyType = "CLIENT"
	PartyProvider PartyType = "PROVIDER"
)

// PartyStatus is the lifecycle state of a party. Parties are soft-deleted by
// moving them to INACTIVE; a status enum leaves room for future states.
type PartyStatus string

const (
	PartyActive   PartyStatus = "ACTIVE"
	PartyInactive PartyStatus = "INACTIVE"
)

// Party is a client or provider with a running balance.
// For a client, a positive balance is the amount the client owes us; for a
// provider, a positive balance is the amount we owe the provider.
type Party struct {
	PartyID   string          `json:"partyID"`
	Name      string          `json:"name"`
	PartyType PartyType       `json:"partyType"`
	Balance   decimal.Decimal `json:"balance"`
	Status    PartyStatus     `json:"status"`
	AuditFields
}

// IsActive reports whether the party may participate in new transactions and
// appears in active listings.
func (p Party) IsActive() bool {
	return p.Status == PartyActive
}

// KindToPartyType maps a ledger kind to the party type stored for it.
// Returns false for LedgerBox, which is not a party.
func KindToPartyType(kind LedgerKind) (PartyType, bool) {
	switch kind {
	case LedgerClient:
		return PartyClient, true
	case LedgerProvider:
		return PartyProvider, true
	default:
		return "", false
	}
}

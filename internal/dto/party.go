package dto

import (
	"github.com/cashbox-app/cashbox_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePartyRequest defines the data needed to register a client or provider.
// The kind comes from the route, not the body.
type CreatePartyRequest struct {
	Name string `json:"name" binding:"required"`
}

// PartyResponse defines the data returned for a party.
type PartyResponse struct {
	PartyID   string             `json:"partyID"`
	Name      string             `json:"name"`
	PartyType domain.PartyType   `json:"partyType"`
	Balance   decimal.Decimal    `json:"balance"`
	Status    domain.PartyStatus `json:"status"`
}

// ListPartiesResponse wraps the list of parties.
type ListPartiesResponse struct {
	Parties []PartyResponse `json:"parties"`
}

// ToPartyResponse converts a domain.Party to PartyResponse DTO
func ToPartyResponse(party *domain.Party) PartyResponse {
	return PartyResponse{
		PartyID:   party.PartyID,
		Name:      party.Name,
		PartyType: party.PartyType,
		Balance:   party.Balance,
		Status:    party.Status,
	}
}

// ToListPartiesResponse converts a slice of domain.Party to ListPartiesResponse
func ToListPartiesResponse(parties []domain.Party) ListPartiesResponse {
	res := make([]PartyResponse, len(parties))
	for i, party := range parties {
		res[i] = ToPartyResponse(&party)
	}
	return ListPartiesResponse{Parties: res}
}

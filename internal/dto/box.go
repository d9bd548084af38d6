package dto

import (
	"github.com/cashbox-app/cashbox_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BoxResponse defines the data returned for a box.
type BoxResponse struct {
	BoxID   string          `json:"boxID"`
	Name    string          `json:"name"`
	BoxType domain.BoxType  `json:"boxType"`
	Balance decimal.Decimal `json:"balance"`
}

// ListBoxesResponse wraps the list of boxes.
type ListBoxesResponse struct {
	Boxes []BoxResponse `json:"boxes"`
}

// ToBoxResponse converts a domain.Box to BoxResponse DTO
func ToBoxResponse(box *domain.Box) BoxResponse {
	return BoxResponse{
		BoxID:   box.BoxID,
		Name:    box.Name,
		BoxType: box.BoxType,
		Balance: box.Balance,
	}
}

// ToListBoxesResponse converts a slice of domain.Box to ListBoxesResponse
func ToListBoxesResponse(boxes []domain.Box) ListBoxesResponse {
	res := make([]BoxResponse, len(boxes))
	for i, box := range boxes {
		res[i] = ToBoxResponse(&box)
	}
	return ListBoxesResponse{Boxes: res}
}

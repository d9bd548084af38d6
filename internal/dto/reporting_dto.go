package dto

import (
	"github.com/cashbox-app/cashbox_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardSummaryResponse returns the dashboard aggregates.
type DashboardSummaryResponse struct {
	TotalCash       decimal.Decimal `json:"totalCash"`
	TotalReceivable decimal.Decimal `json:"totalReceivable"`
	TotalPayable    decimal.Decimal `json:"totalPayable"`
	NetWorth        decimal.Decimal `json:"netWorth"`
}

// ToDashboardSummaryResponse converts domain.DashboardSummary to its DTO.
func ToDashboardSummaryResponse(s *domain.DashboardSummary) DashboardSummaryResponse {
	return DashboardSummaryResponse{
		TotalCash:       s.TotalCash,
		TotalReceivable: s.TotalReceivable,
		TotalPayable:    s.TotalPayable,
		NetWorth:        s.NetWorth,
	}
}

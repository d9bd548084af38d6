package domain

import "github.com/shopspring/decimal"

// LedgerTotals holds the raw summed balances the reporting repository reads
// from current ledger state.
type LedgerTotals struct {
	TotalCash       decimal.Decimal // Sum of all box balances
	TotalReceivable decimal.Decimal // Sum of active client balances
	TotalPayable    decimal.Decimal // Sum of active provider balances
}

// DashboardSummary holds the on-demand aggregates for the dashboard view.
// NetWorth = TotalCash + TotalReceivable - TotalPayable.
type DashboardSummary struct {
	TotalCash       decimal.Decimal `json:"totalCash"`
	TotalReceivable decimal.Decimal `json:"totalReceivable"`
	TotalPayable    decimal.Decimal `json:"totalPayable"`
	NetWorth        decimal.Decimal `json:"netWorth"`
}

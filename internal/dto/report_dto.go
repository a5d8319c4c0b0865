package dto

import (
	"github.com/driversales/driversales-backend/internal/report"
	"github.com/shopspring/decimal"
)

// GrandTotals mirrors report.GrandTotals for JSON responses.
type GrandTotals struct {
	Total      decimal.Decimal `json:"total"`
	Card       decimal.Decimal `json:"card"`
	Cash       decimal.Decimal `json:"cash"`
	Commission decimal.Decimal `json:"commission"`
}

func FromGrandTotals(g report.GrandTotals) GrandTotals {
	return GrandTotals{Total: g.Total, Card: g.Card, Cash: g.Cash, Commission: g.Commission}
}

type DashboardResponse struct {
	DateRange   report.DateRange        `json:"date_range"`
	Totals      GrandTotals             `json:"totals"`
	Platforms   []report.PlatformTotals `json:"platforms"`
	RecentSales []SaleResponse          `json:"recent_sales"`
	DriverCount int64                   `json:"driver_count"`
}

type ReportResponse struct {
	DateRange report.DateRange        `json:"date_range"`
	Totals    GrandTotals             `json:"totals"`
	Platforms []report.PlatformTotals `json:"platforms"`
	Daily     []report.SeriesPoint    `json:"daily"`
	Monthly   []report.SeriesPoint    `json:"monthly,omitempty"`
	Drivers   []string                `json:"drivers,omitempty"`
}

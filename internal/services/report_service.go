package services

import (
	"sync"
	"time"

	"github.com/driversales/driversales-backend/internal/dto"
	"github.com/driversales/driversales-backend/internal/models"
	"github.com/driversales/driversales-backend/internal/report"
	"github.com/driversales/driversales-backend/internal/tenant"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReportQuery is a resolved filter for the dashboard and reports
// surfaces: the window plus an optional single-driver restriction.
type ReportQuery struct {
	Range  report.DateRange
	Driver *uuid.UUID
}

type ReportService struct {
	db    *gorm.DB
	sales *SaleService

	mu     sync.Mutex
	guards map[uuid.UUID]*report.Latest[dto.DashboardResponse]
}

func NewReportService(db *gorm.DB, sales *SaleService) *ReportService {
	return &ReportService{
		db:     db,
		sales:  sales,
		guards: make(map[uuid.UUID]*report.Latest[dto.DashboardResponse]),
	}
}

func (s *ReportService) guardFor(userID uuid.UUID) *report.Latest[dto.DashboardResponse] {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.guards[userID]
	if !ok {
		g = &report.Latest[dto.DashboardResponse]{}
		s.guards[userID] = g
	}
	return g
}

// Dashboard computes the summary view for one user's current filter.
// Rapid filter changes race their queries; the per-user guard makes
// sure a slow older query can never overwrite a newer result — the
// superseded caller is served the newer snapshot instead.
func (s *ReportService) Dashboard(companyID, userID uuid.UUID, role string, q ReportQuery) (dto.DashboardResponse, error) {
	guard := s.guardFor(userID)
	ticket := guard.Begin()

	driver := q.Driver
	var commission *decimal.Decimal
	if role == models.RoleDriver {
		// Drivers only ever see their own numbers.
		driver = &userID
		commission = s.commissionFor(companyID, userID)
	}

	sales, _, err := s.sales.List(companyID, SaleFilter{UserID: driver, Range: &q.Range})
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	records := Records(sales)
	totals := report.Totals(records, commission)

	recent := sales
	if len(recent) > 10 {
		recent = recent[:10]
	}

	resp := dto.DashboardResponse{
		DateRange:   q.Range,
		Totals:      dto.FromGrandTotals(totals),
		Platforms:   report.SummarizeByPlatform(records),
		RecentSales: recent,
	}

	if role == models.RoleAdmin {
		var count int64
		if err := s.db.Model(&models.User{}).
			Scopes(tenant.ForCompany(companyID)).
			Where("role = ?", models.RoleDriver).
			Count(&count).Error; err == nil {
			resp.DriverCount = count
		}
	}

	served, _ := guard.Commit(ticket, resp)
	return served, nil
}

// Report computes the charts view: totals, platform split, daily
// series, and for admins the monthly-by-driver breakdown.
func (s *ReportService) Report(companyID, userID uuid.UUID, role string, q ReportQuery) (dto.ReportResponse, error) {
	driver := q.Driver
	var commission *decimal.Decimal
	if role == models.RoleDriver {
		driver = &userID
		commission = s.commissionFor(companyID, userID)
	}

	sales, _, err := s.sales.List(companyID, SaleFilter{UserID: driver, Range: &q.Range})
	if err != nil {
		return dto.ReportResponse{}, err
	}

	records := Records(sales)
	resp := dto.ReportResponse{
		DateRange: q.Range,
		Totals:    dto.FromGrandTotals(report.Totals(records, commission)),
		Platforms: report.SummarizeByPlatform(records),
		Daily:     report.DailySeries(records),
	}

	if role == models.RoleAdmin {
		resp.Monthly = report.MonthlySeries(records)
		resp.Drivers = report.DriverNames(records)
	}
	return resp, nil
}

// ResolveRange turns request parameters into a concrete window:
// quick-select name first, then an explicit pair, then the current
// month in the reference zone.
func ResolveRange(quick, start, end string, now time.Time) (report.DateRange, error) {
	if quick != "" {
		if r, ok := report.QuickRange(quick, now); ok {
			return r, nil
		}
	}
	if start != "" || end != "" {
		return report.ParseRange(start, end)
	}
	return report.CurrentMonth(now), nil
}

// commissionFor resolves the driver's current percentage; nil when
// the lookup fails so commission simply stays zero.
func (s *ReportService) commissionFor(companyID, userID uuid.UUID) *decimal.Decimal {
	var user models.User
	if err := s.db.Scopes(tenant.ForCompany(companyID)).First(&user, "id = ?", userID).Error; err != nil {
		return nil
	}
	pct := user.Commission
	return &pct
}

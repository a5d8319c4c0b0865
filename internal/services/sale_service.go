package services

import (
	"errors"
	"time"

	"github.com/driversales/driversales-backend/internal/dto"
	"github.com/driversales/driversales-backend/internal/models"
	"github.com/driversales/driversales-backend/internal/report"
	"github.com/driversales/driversales-backend/internal/tenant"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrSaleNotFound    = errors.New("sale not found")
	ErrNotSaleOwner    = errors.New("you do not own this sale")
	ErrNegativeAmount  = errors.New("amounts must not be negative")
	ErrInvalidDate     = errors.New("date must be YYYY-MM-DD")
	ErrUnknownPlatform = errors.New("platform is not enabled for this company")
	ErrDriverRequired  = errors.New("sale must belong to a driver of this company")
)

// Modifier identifies who performed a mutation, for the denormalized
// audit columns on each sale.
type Modifier struct {
	ID   uuid.UUID
	Name string
}

type SaleService struct {
	db       *gorm.DB
	settings *SettingsService
}

func NewSaleService(db *gorm.DB, settings *SettingsService) *SaleService {
	return &SaleService{db: db, settings: settings}
}

// SaleFilter narrows List: optional driver, optional inclusive date
// window, optional row cap.
type SaleFilter struct {
	UserID *uuid.UUID
	Range  *report.DateRange
	Limit  int
}

func (s *SaleService) Create(companyID uuid.UUID, mod Modifier, role string, req *dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	// Drivers always enter for themselves; admins may enter on
	// behalf of any driver of the company.
	targetID := mod.ID
	if role == models.RoleAdmin && req.UserID != nil {
		targetID = *req.UserID
	}

	var target models.User
	if err := s.db.Scopes(tenant.ForCompany(companyID)).First(&target, "id = ?", targetID).Error; err != nil {
		return nil, ErrDriverRequired
	}

	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	if req.CardPayments.IsNegative() || req.CashPayments.IsNegative() || req.TotalSale.IsNegative() {
		return nil, ErrNegativeAmount
	}

	// Entry-time allow-list check. Historical rows keep whatever
	// string they were saved with; only new entries are checked.
	if err := s.checkPlatform(companyID, req.Platform); err != nil {
		return nil, err
	}

	sale := models.Sale{
		ID:                 uuid.New(),
		CompanyID:          companyID,
		UserID:             target.ID,
		Date:               datatypes.Date(day),
		Platform:           req.Platform,
		CardPayments:       req.CardPayments,
		CashPayments:       req.CashPayments,
		TotalSale:          req.TotalSale,
		Notes:              req.Notes,
		LastModifiedBy:     mod.ID,
		LastModifiedByName: mod.Name,
	}

	if err := s.db.Create(&sale).Error; err != nil {
		return nil, err
	}

	resp := saleResponse(&sale, target.Name)
	return &resp, nil
}

// List returns the company's sales matching the filter, newest date
// first, each joined with its driver's display name.
func (s *SaleService) List(companyID uuid.UUID, filter SaleFilter) ([]dto.SaleResponse, int64, error) {
	applyFilter := func(q *gorm.DB) *gorm.DB {
		q = q.Scopes(tenant.ForCompany(companyID))
		if filter.UserID != nil {
			q = q.Where("user_id = ?", *filter.UserID)
		}
		if filter.Range != nil {
			q = q.Where("date >= ? AND date <= ?", filter.Range.Start, filter.Range.End)
		}
		return q
	}

	var total int64
	if err := applyFilter(s.db.Model(&models.Sale{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	fetch := applyFilter(s.db).Preload("User").Order("date DESC, created_at DESC")
	if filter.Limit > 0 {
		fetch = fetch.Limit(filter.Limit)
	}

	var sales []models.Sale
	if err := fetch.Find(&sales).Error; err != nil {
		return nil, 0, err
	}

	out := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		out = append(out, saleResponse(&sales[i], sales[i].User.Name))
	}
	return out, total, nil
}

func (s *SaleService) Get(companyID, userID uuid.UUID, role string, saleID uuid.UUID) (*dto.SaleResponse, error) {
	sale, err := s.fetch(companyID, userID, role, saleID)
	if err != nil {
		return nil, err
	}
	resp := saleResponse(sale, sale.User.Name)
	return &resp, nil
}

func (s *SaleService) Update(companyID uuid.UUID, mod Modifier, role string, saleID uuid.UUID, req *dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	sale, err := s.fetch(companyID, mod.ID, role, saleID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		day, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
		sale.Date = datatypes.Date(day)
	}
	if req.Platform != nil {
		if err := s.checkPlatform(companyID, *req.Platform); err != nil {
			return nil, err
		}
		sale.Platform = *req.Platform
	}
	if req.CardPayments != nil {
		if req.CardPayments.IsNegative() {
			return nil, ErrNegativeAmount
		}
		sale.CardPayments = *req.CardPayments
	}
	if req.CashPayments != nil {
		if req.CashPayments.IsNegative() {
			return nil, ErrNegativeAmount
		}
		sale.CashPayments = *req.CashPayments
	}
	if req.TotalSale != nil {
		if req.TotalSale.IsNegative() {
			return nil, ErrNegativeAmount
		}
		sale.TotalSale = *req.TotalSale
	}
	if req.Notes != nil {
		sale.Notes = *req.Notes
	}

	sale.LastModifiedBy = mod.ID
	sale.LastModifiedByName = mod.Name

	if err := s.db.Save(sale).Error; err != nil {
		return nil, err
	}

	resp := saleResponse(sale, sale.User.Name)
	return &resp, nil
}

func (s *SaleService) Delete(companyID, userID uuid.UUID, role string, saleID uuid.UUID) error {
	sale, err := s.fetch(companyID, userID, role, saleID)
	if err != nil {
		return err
	}
	return s.db.Delete(sale).Error
}

// fetch loads a sale within the company. Drivers can only reach their
// own rows; admins reach any row of the company.
func (s *SaleService) fetch(companyID, userID uuid.UUID, role string, saleID uuid.UUID) (*models.Sale, error) {
	var sale models.Sale
	if err := s.db.Scopes(tenant.ForCompany(companyID)).Preload("User").First(&sale, "id = ?", saleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSaleNotFound
		}
		return nil, err
	}
	if role != models.RoleAdmin && sale.UserID != userID {
		return nil, ErrNotSaleOwner
	}
	return &sale, nil
}

func (s *SaleService) checkPlatform(companyID uuid.UUID, platform string) error {
	if platform == "" {
		return ErrUnknownPlatform
	}
	allowed := s.settings.AllowedPlatforms(companyID)
	for _, p := range allowed {
		if p == platform {
			return nil
		}
	}
	return ErrUnknownPlatform
}

func saleResponse(sale *models.Sale, driverName string) dto.SaleResponse {
	return dto.SaleResponse{
		ID:                 sale.ID,
		UserID:             sale.UserID,
		DriverName:         driverName,
		Date:               time.Time(sale.Date).Format("2006-01-02"),
		Platform:           sale.Platform,
		CardPayments:       sale.CardPayments,
		CashPayments:       sale.CashPayments,
		TotalSale:          sale.TotalSale,
		Notes:              sale.Notes,
		LastModifiedBy:     sale.LastModifiedBy,
		LastModifiedByName: sale.LastModifiedByName,
		CreatedAt:          sale.CreatedAt,
		UpdatedAt:          sale.UpdatedAt,
	}
}

// Records converts fetched sales into the aggregation input shape.
func Records(sales []dto.SaleResponse) []report.SaleRecord {
	out := make([]report.SaleRecord, 0, len(sales))
	for _, s := range sales {
		day, err := time.Parse("2006-01-02", s.Date)
		if err != nil {
			continue
		}
		out = append(out, report.SaleRecord{
			Date:         day,
			Platform:     s.Platform,
			DriverName:   s.DriverName,
			TotalSale:    s.TotalSale,
			CardPayments: s.CardPayments,
			CashPayments: s.CashPayments,
		})
	}
	return out
}

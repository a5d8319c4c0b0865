package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/driversales/driversales-backend/internal/dto"
	"github.com/driversales/driversales-backend/internal/models"
	"github.com/driversales/driversales-backend/internal/report"
	"github.com/driversales/driversales-backend/internal/tenant"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken     = errors.New("email already registered")
	ErrDriverNotFound = errors.New("driver not found")
	ErrWeakPassword   = errors.New("password must be at least 8 characters")
	ErrNameRequired   = errors.New("name is required")
)

type DriverService struct {
	db    *gorm.DB
	sales *SaleService
}

func NewDriverService(db *gorm.DB, sales *SaleService) *DriverService {
	return &DriverService{db: db, sales: sales}
}

// Create provisions a driver account under the admin's company.
func (s *DriverService) Create(companyID, adminID uuid.UUID, req *dto.CreateDriverRequest) (*dto.UserResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" {
		return nil, errors.New("email is required")
	}
	if len(req.Password) < 8 {
		return nil, ErrWeakPassword
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}

	var existing models.User
	if err := s.db.Scopes(tenant.ForCompany(companyID)).Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	driver := models.User{
		ID:         uuid.New(),
		CompanyID:  companyID,
		Email:      email,
		Password:   string(hash),
		Role:       models.RoleDriver,
		Name:       strings.TrimSpace(req.Name),
		AdminID:    &adminID,
		Commission: ClampCommission(req.Commission),
	}

	if err := s.db.Create(&driver).Error; err != nil {
		return nil, fmt.Errorf("failed to create driver: %w", err)
	}

	resp := UserResponse(&driver)
	return &resp, nil
}

// List returns the company's drivers ordered by name.
func (s *DriverService) List(companyID uuid.UUID) ([]dto.UserResponse, error) {
	var drivers []models.User
	err := s.db.Scopes(tenant.ForCompany(companyID)).
		Where("role = ?", models.RoleDriver).
		Order("name").
		Find(&drivers).Error
	if err != nil {
		return nil, err
	}

	out := make([]dto.UserResponse, 0, len(drivers))
	for i := range drivers {
		out = append(out, UserResponse(&drivers[i]))
	}
	return out, nil
}

// Profile returns one driver with their sales history over the given
// window and the aggregated totals including commission. Commission
// is a live recomputation from the driver's current percentage, not a
// per-sale snapshot.
func (s *DriverService) Profile(companyID, driverID uuid.UUID, window report.DateRange) (*dto.DriverProfileResponse, error) {
	driver, err := s.get(companyID, driverID)
	if err != nil {
		return nil, err
	}

	sales, _, err := s.sales.List(companyID, SaleFilter{UserID: &driverID, Range: &window})
	if err != nil {
		return nil, err
	}

	pct := driver.Commission
	totals := report.Totals(Records(sales), &pct)

	return &dto.DriverProfileResponse{
		Driver: UserResponse(driver),
		Sales:  sales,
		Totals: dto.FromGrandTotals(totals),
	}, nil
}

func (s *DriverService) Update(companyID, driverID uuid.UUID, req *dto.UpdateDriverRequest) (*dto.UserResponse, error) {
	driver, err := s.get(companyID, driverID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		driver.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil && strings.TrimSpace(*req.Email) != "" {
		email := strings.TrimSpace(strings.ToLower(*req.Email))
		var other models.User
		if err := s.db.Scopes(tenant.ForCompany(companyID)).
			Where("email = ? AND id <> ?", email, driverID).First(&other).Error; err == nil {
			return nil, ErrEmailTaken
		}
		driver.Email = email
	}
	if req.Commission != nil {
		driver.Commission = ClampCommission(*req.Commission)
	}

	if err := s.db.Save(driver).Error; err != nil {
		return nil, err
	}

	resp := UserResponse(driver)
	return &resp, nil
}

func (s *DriverService) Delete(companyID, driverID uuid.UUID) error {
	driver, err := s.get(companyID, driverID)
	if err != nil {
		return err
	}
	return s.db.Delete(driver).Error
}

func (s *DriverService) get(companyID, driverID uuid.UUID) (*models.User, error) {
	var driver models.User
	err := s.db.Scopes(tenant.ForCompany(companyID)).
		Where("role = ?", models.RoleDriver).
		First(&driver, "id = ?", driverID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDriverNotFound
		}
		return nil, err
	}
	return &driver, nil
}

// ClampCommission forces a commission percentage into [0, 100].
// Out-of-range input is clamped, not rejected.
func ClampCommission(pct decimal.Decimal) decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	if pct.IsNegative() {
		return decimal.Zero
	}
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}

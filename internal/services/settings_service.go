package services

import (
	"errors"
	"log/slog"

	"github.com/driversales/driversales-backend/internal/dto"
	"github.com/driversales/driversales-backend/internal/models"
	"github.com/driversales/driversales-backend/internal/platform"
	"github.com/driversales/driversales-backend/internal/tenant"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrCompanyNotFound = errors.New("company not found")

type SettingsService struct {
	db       *gorm.DB
	defaults *platform.Registry
}

func NewSettingsService(db *gorm.DB, defaults *platform.Registry) *SettingsService {
	return &SettingsService{db: db, defaults: defaults}
}

// Get returns the company's settings, creating the row from defaults
// on first admin access. A load failure falls back to the default
// configuration instead of surfacing an error: a misconfigured
// settings row must not take the dashboard down.
func (s *SettingsService) Get(companyID uuid.UUID, role string) dto.SettingsResponse {
	var row models.Settings
	err := s.db.Scopes(tenant.ForCompany(companyID)).First(&row).Error
	if err == nil {
		return settingsResponse(&row)
	}

	if errors.Is(err, gorm.ErrRecordNotFound) && role == models.RoleAdmin {
		if created, createErr := s.create(companyID); createErr == nil {
			return settingsResponse(created)
		} else {
			slog.Error("failed to create settings", "company_id", companyID.String(), "error", createErr)
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		slog.Error("failed to load settings", "company_id", companyID.String(), "error", err)
	}

	d := s.defaults.Defaults()
	return dto.SettingsResponse{
		Currency:         d.Currency,
		EnabledPlatforms: d.EnabledPlatforms,
		CustomPlatforms:  d.CustomPlatforms,
	}
}

func (s *SettingsService) create(companyID uuid.UUID) (*models.Settings, error) {
	d := s.defaults.Defaults()
	row := models.Settings{
		ID:               uuid.New(),
		CompanyID:        companyID,
		Currency:         d.Currency,
		EnabledPlatforms: datatypes.NewJSONSlice(d.EnabledPlatforms),
		CustomPlatforms:  datatypes.NewJSONSlice(d.CustomPlatforms),
	}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Update overwrites the settings row, creating it first if the admin
// never opened the settings page before.
func (s *SettingsService) Update(companyID uuid.UUID, req *dto.UpdateSettingsRequest) (dto.SettingsResponse, error) {
	var row models.Settings
	err := s.db.Scopes(tenant.ForCompany(companyID)).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		created, createErr := s.create(companyID)
		if createErr != nil {
			return dto.SettingsResponse{}, createErr
		}
		row = *created
	} else if err != nil {
		return dto.SettingsResponse{}, err
	}

	if req.Currency != "" {
		row.Currency = req.Currency
	}
	if req.EnabledPlatforms != nil {
		row.EnabledPlatforms = datatypes.NewJSONSlice(req.EnabledPlatforms)
	}
	if req.CustomPlatforms != nil {
		row.CustomPlatforms = datatypes.NewJSONSlice(req.CustomPlatforms)
	}

	if err := s.db.Save(&row).Error; err != nil {
		return dto.SettingsResponse{}, err
	}
	return settingsResponse(&row), nil
}

// AllowedPlatforms is the entry-time allow-list: the company's
// enabled plus custom platforms, falling back to the defaults when no
// settings row exists yet.
func (s *SettingsService) AllowedPlatforms(companyID uuid.UUID) []string {
	var row models.Settings
	if err := s.db.Scopes(tenant.ForCompany(companyID)).First(&row).Error; err != nil {
		d := s.defaults.Defaults()
		return append(d.EnabledPlatforms, d.CustomPlatforms...)
	}
	return row.AllPlatforms()
}

// Currency resolves the company's display currency for reports.
func (s *SettingsService) Currency(companyID uuid.UUID) string {
	var row models.Settings
	if err := s.db.Scopes(tenant.ForCompany(companyID)).First(&row).Error; err != nil {
		return s.defaults.Currency()
	}
	return row.Currency
}

func (s *SettingsService) GetCompany(companyID uuid.UUID) (dto.CompanyResponse, error) {
	var company models.Company
	if err := s.db.First(&company, "id = ?", companyID).Error; err != nil {
		return dto.CompanyResponse{}, ErrCompanyNotFound
	}
	return dto.CompanyResponse{
		Name:         company.Name,
		ContactEmail: company.ContactEmail,
		ContactPhone: company.ContactPhone,
	}, nil
}

func (s *SettingsService) UpdateCompany(companyID uuid.UUID, req *dto.UpdateCompanyRequest) (dto.CompanyResponse, error) {
	var company models.Company
	if err := s.db.First(&company, "id = ?", companyID).Error; err != nil {
		return dto.CompanyResponse{}, ErrCompanyNotFound
	}

	if req.Name != nil && *req.Name != "" {
		company.Name = *req.Name
	}
	if req.ContactEmail != nil {
		company.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		company.ContactPhone = *req.ContactPhone
	}

	if err := s.db.Save(&company).Error; err != nil {
		return dto.CompanyResponse{}, err
	}
	return dto.CompanyResponse{
		Name:         company.Name,
		ContactEmail: company.ContactEmail,
		ContactPhone: company.ContactPhone,
	}, nil
}

func settingsResponse(row *models.Settings) dto.SettingsResponse {
	return dto.SettingsResponse{
		Currency:         row.Currency,
		EnabledPlatforms: row.EnabledPlatforms,
		CustomPlatforms:  row.CustomPlatforms,
	}
}

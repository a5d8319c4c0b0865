package tenant

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ForCompany returns a GORM scope that filters by company_id.
func ForCompany(companyID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}

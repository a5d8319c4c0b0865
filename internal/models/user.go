package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	RoleAdmin  = "admin"
	RoleDriver = "driver"
)

// User is an admin or driver account. Email is unique within a
// company. Commission is a percentage in [0, 100] of a driver's
// aggregated sales total; admins keep it at zero.
type User struct {
	ID         uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CompanyID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_users_company_email" json:"-"`
	Email      string          `gorm:"not null;size:255;uniqueIndex:idx_users_company_email" json:"email"`
	Password   string          `gorm:"not null" json:"-"`
	Role       string          `gorm:"size:20;not null;default:'driver'" json:"role"`
	Name       string          `gorm:"size:255;not null" json:"name"`
	AdminID    *uuid.UUID      `gorm:"type:uuid" json:"admin_id"`
	Commission decimal.Decimal `gorm:"type:numeric(5,2);default:0" json:"commission"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `gorm:"index" json:"-"`
}

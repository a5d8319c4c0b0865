package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Sale is one day's earnings entry for a driver on one platform.
// TotalSale is entered independently and is NOT required to equal
// CardPayments + CashPayments; tips and manual adjustments may make
// the two legitimately diverge. Platform is the literal string chosen
// at entry time and is never rewritten when the company's allow-list
// changes afterwards.
type Sale struct {
	ID                 uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CompanyID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"-"`
	UserID             uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Date               datatypes.Date  `gorm:"not null;index" json:"date"`
	Platform           string          `gorm:"size:100;not null" json:"platform"`
	CardPayments       decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"card_payments"`
	CashPayments       decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"cash_payments"`
	TotalSale          decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"total_sale"`
	Notes              string          `gorm:"type:text" json:"notes"`
	LastModifiedBy     uuid.UUID       `gorm:"type:uuid" json:"last_modified_by"`
	LastModifiedByName string          `gorm:"size:255" json:"last_modified_by_name"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
	DeletedAt          gorm.DeletedAt  `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateSaleRequest struct {
	// UserID is honored for admins entering a sale on behalf of a
	// driver; drivers always create for themselves.
	UserID       *uuid.UUID      `json:"user_id"`
	Date         string          `json:"date"` // YYYY-MM-DD
	Platform     string          `json:"platform"`
	CardPayments decimal.Decimal `json:"card_payments"`
	CashPayments decimal.Decimal `json:"cash_payments"`
	TotalSale    decimal.Decimal `json:"total_sale"`
	Notes        string          `json:"notes"`
}

type UpdateSaleRequest struct {
	Date         *string          `json:"date"`
	Platform     *string          `json:"platform"`
	CardPayments *decimal.Decimal `json:"card_payments"`
	CashPayments *decimal.Decimal `json:"cash_payments"`
	TotalSale    *decimal.Decimal `json:"total_sale"`
	Notes        *string          `json:"notes"`
}

// SaleResponse is a Sale joined with its driver's display name.
type SaleResponse struct {
	ID                 uuid.UUID       `json:"id"`
	UserID             uuid.UUID       `json:"user_id"`
	DriverName         string          `json:"driver_name"`
	Date               string          `json:"date"`
	Platform           string          `json:"platform"`
	CardPayments       decimal.Decimal `json:"card_payments"`
	CashPayments       decimal.Decimal `json:"cash_payments"`
	TotalSale          decimal.Decimal `json:"total_sale"`
	Notes              string          `json:"notes"`
	LastModifiedBy     uuid.UUID       `json:"last_modified_by"`
	LastModifiedByName string          `json:"last_modified_by_name"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

type SaleListResponse struct {
	Sales []SaleResponse `json:"sales"`
	Total int64          `json:"total"`
}

package dto

import "github.com/shopspring/decimal"

type CreateDriverRequest struct {
	Email      string          `json:"email"`
	Password   string          `json:"password"`
	Name       string          `json:"name"`
	Commission decimal.Decimal `json:"commission"`
}

type UpdateDriverRequest struct {
	Name       *string          `json:"name"`
	Email      *string          `json:"email"`
	Commission *decimal.Decimal `json:"commission"`
}

type DriverProfileResponse struct {
	Driver UserResponse   `json:"driver"`
	Sales  []SaleResponse `json:"sales"`
	Totals GrandTotals    `json:"totals"`
}

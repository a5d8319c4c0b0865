package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/driversales/driversales-backend/internal/dto"
	"github.com/driversales/driversales-backend/internal/models"
	"github.com/driversales/driversales-backend/internal/services"
	"github.com/driversales/driversales-backend/internal/tenant"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SaleHandler struct {
	service *services.SaleService
}

func NewSaleHandler(service *services.SaleService) *SaleHandler {
	return &SaleHandler{service: service}
}

// requestIdentity pulls the caller's company, user, role and display
// name out of the JWT; shared by every protected handler.
func requestIdentity(c *fiber.Ctx) (companyID, userID uuid.UUID, role, name string, err error) {
	companyID, err = tenant.GetCompanyID(c)
	if err != nil {
		return
	}
	userID, err = tenant.GetUserID(c)
	if err != nil {
		return
	}
	role = tenant.GetRole(c)
	name = tenant.GetUserName(c)
	return
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}

func (h *SaleHandler) Create(c *fiber.Ctx) error {
	companyID, userID, role, name, err := requestIdentity(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	sale, err := h.service.Create(companyID, services.Modifier{ID: userID, Name: name}, role, &req)
	if err != nil {
		return saleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(sale)
}

func (h *SaleHandler) List(c *fiber.Ctx) error {
	companyID, userID, role, _, err := requestIdentity(c)
	if err != nil {
		return unauthorized(c)
	}

	window, err := services.ResolveRange(c.Query("quick"), c.Query("start_date"), c.Query("end_date"), time.Now())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid date range",
		})
	}

	filter := services.SaleFilter{Range: &window}
	if role == models.RoleDriver {
		filter.UserID = &userID
	} else if raw := c.Query("driver_id"); raw != "" && raw != "all" {
		driverID, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid driver_id",
			})
		}
		filter.UserID = &driverID
	}

	if limit, err := strconv.Atoi(c.Query("limit", "0")); err == nil && limit > 0 {
		filter.Limit = limit
	}

	sales, total, err := h.service.List(companyID, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch sales",
		})
	}

	return c.JSON(dto.SaleListResponse{Sales: sales, Total: total})
}

func (h *SaleHandler) Get(c *fiber.Ctx) error {
	companyID, userID, role, _, err := requestIdentity(c)
	if err != nil {
		return unauthorized(c)
	}

	saleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid sale id",
		})
	}

	sale, err := h.service.Get(companyID, userID, role, saleID)
	if err != nil {
		return saleError(c, err)
	}
	return c.JSON(sale)
}

func (h *SaleHandler) Update(c *fiber.Ctx) error {
	companyID, userID, role, name, err := requestIdentity(c)
	if err != nil {
		return unauthorized(c)
	}

	saleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid sale id",
		})
	}

	var req dto.UpdateSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	sale, err := h.service.Update(companyID, services.Modifier{ID: userID, Name: name}, role, saleID, &req)
	if err != nil {
		return saleError(c, err)
	}
	return c.JSON(sale)
}

func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	companyID, userID, role, _, err := requestIdentity(c)
	if err != nil {
		return unauthorized(c)
	}

	saleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid sale id",
		})
	}

	if err := h.service.Delete(companyID, userID, role, saleID); err != nil {
		return saleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Sale deleted"})
}

func saleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrSaleNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrNotSaleOwner):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrNegativeAmount),
		errors.Is(err, services.ErrInvalidDate),
		errors.Is(err, services.ErrUnknownPlatform),
		errors.Is(err, services.ErrDriverRequired):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
}

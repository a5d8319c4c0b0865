package handlers

import (
	"time"

	"github.com/driversales/driversales-backend/internal/dto"
	"github.com/driversales/driversales-backend/internal/models"
	"github.com/driversales/driversales-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ReportHandler struct {
	service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) query(c *fiber.Ctx, role string) (services.ReportQuery, error) {
	window, err := services.ResolveRange(c.Query("quick"), c.Query("start_date"), c.Query("end_date"), time.Now())
	if err != nil {
		return services.ReportQuery{}, err
	}

	q := services.ReportQuery{Range: window}
	if role == models.RoleAdmin {
		if raw := c.Query("driver_id"); raw != "" && raw != "all" {
			driverID, err := uuid.Parse(raw)
			if err != nil {
				return services.ReportQuery{}, err
			}
			q.Driver = &driverID
		}
	}
	return q, nil
}

func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	companyID, userID, role, _, err := requestIdentity(c)
	if err != nil {
		return unauthorized(c)
	}

	q, err := h.query(c, role)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid filter",
		})
	}

	resp, err := h.service.Dashboard(companyID, userID, role, q)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load dashboard data",
		})
	}
	return c.JSON(resp)
}

func (h *ReportHandler) Report(c *fiber.Ctx) error {
	companyID, userID, role, _, err := requestIdentity(c)
	if err != nil {
		return unauthorized(c)
	}

	q, err := h.query(c, role)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid filter",
		})
	}

	resp, err := h.service.Report(companyID, userID, role, q)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load sales data",
		})
	}
	return c.JSON(resp)
}

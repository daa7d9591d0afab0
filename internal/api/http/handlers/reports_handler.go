package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/service"
)

// ReportsHandler serves administrator reports.
type ReportsHandler struct {
	service *service.ReportService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reportService *service.ReportService) *ReportsHandler {
	return &ReportsHandler{service: reportService}
}

// Overview GET /admin/reports/overview.
func (h *ReportsHandler) Overview(c *fiber.Ctx) error {
	report, err := h.service.Overview(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": report})
}

// Technician GET /admin/reports/technicians/:id.
func (h *ReportsHandler) Technician(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	report, err := h.service.ForTechnician(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": report})
}

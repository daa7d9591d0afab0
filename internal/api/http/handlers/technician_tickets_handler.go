package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-service/internal/auth"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/service"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// TechnicianTicketsHandler manages triage-side ticket endpoints.
type TechnicianTicketsHandler struct {
	tickets *service.TicketService
	reports *service.ReportService
}

// NewTechnicianTicketsHandler constructs handler.
func NewTechnicianTicketsHandler(ticketService *service.TicketService, reportService *service.ReportService) *TechnicianTicketsHandler {
	return &TechnicianTicketsHandler{tickets: ticketService, reports: reportService}
}

// Queue GET /technician/tickets — the triage queue, priority first,
// oldest first within a priority.
func (h *TechnicianTicketsHandler) Queue(c *fiber.Ctx) error {
	tickets, err := h.tickets.TriageQueue(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketSummaries(tickets)})
}

// Get GET /technician/tickets/:id.
func (h *TechnicianTicketsHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	ticket, err := h.tickets.GetTicket(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketDetail(ticket)})
}

// Respond POST /technician/tickets/:id/respond.
func (h *TechnicianTicketsHandler) Respond(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("technician required")
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req dto.AddNoteRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	ticket, note, err := h.tickets.Respond(c.Context(), principal.User, id, req.Body)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"ticket": ticketSummary(ticket),
			"note":   noteResponse(note),
		},
	})
}

// ChangeStatus PATCH /technician/tickets/:id/status.
func (h *TechnicianTicketsHandler) ChangeStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("technician required")
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req dto.ChangeStatusRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	status, err := domain.ParseTicketStatus(req.Status)
	if err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}
	ticket, err := h.tickets.ChangeStatus(c.Context(), principal.User, id, status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketSummary(ticket)})
}

// Finalize POST /technician/tickets/:id/finalize.
func (h *TechnicianTicketsHandler) Finalize(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("technician required")
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req dto.FinalizeRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	ticket, err := h.tickets.Finalize(c.Context(), principal.User, id, req.Solution, req.Minutes)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketDetail(ticket)})
}

// Report GET /technician/report — the caller's own workload summary.
func (h *TechnicianTicketsHandler) Report(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("technician required")
	}
	report, err := h.reports.ForTechnician(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": report})
}

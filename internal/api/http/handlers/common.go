package handlers

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

var validate = validator.New()

// parseBody unmarshals the request body and runs struct validation.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validate.Struct(out); err != nil {
		details := map[string]any{}
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			for _, fieldErr := range validationErrs {
				details[fieldErr.Field()] = fieldErr.Tag()
			}
		}
		return apperrors.NewValidationError("validation failed", details)
	}
	return nil
}

// idParam parses the :id route parameter.
func idParam(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid id", nil)
	}
	return id, nil
}

func ticketSummary(ticket *domain.Ticket) dto.TicketSummary {
	return dto.TicketSummary{
		ID:           ticket.ID,
		Title:        ticket.Title,
		RequesterID:  ticket.RequesterID,
		TechnicianID: ticket.TechnicianID,
		Status:       ticket.Status,
		Priority:     ticket.Priority,
		Category:     ticket.Category,
		Department:   ticket.Department,
		Urgent:       ticket.Urgent,
		Remote:       ticket.Remote,
		CreatedAt:    ticket.CreatedAt,
	}
}

func ticketSummaries(tickets []domain.Ticket) []dto.TicketSummary {
	items := make([]dto.TicketSummary, 0, len(tickets))
	for i := range tickets {
		items = append(items, ticketSummary(&tickets[i]))
	}
	return items
}

func ticketDetail(ticket *domain.Ticket) dto.TicketDetailResponse {
	notes := make([]dto.NoteResponse, 0, len(ticket.Notes))
	for _, note := range ticket.Notes {
		notes = append(notes, noteResponse(&note))
	}
	return dto.TicketDetailResponse{
		ID:                ticket.ID,
		Title:             ticket.Title,
		Description:       ticket.Description,
		RequesterID:       ticket.RequesterID,
		TechnicianID:      ticket.TechnicianID,
		Status:            ticket.Status,
		Priority:          ticket.Priority,
		Category:          ticket.Category,
		Department:        ticket.Department,
		Urgent:            ticket.Urgent,
		Remote:            ticket.Remote,
		CreatedAt:         ticket.CreatedAt,
		ResolvedAt:        ticket.ResolvedAt,
		ResolutionMinutes: ticket.ResolutionMinutes,
		Notes:             notes,
	}
}

func noteResponse(note *domain.Note) dto.NoteResponse {
	return dto.NoteResponse{
		ID:         note.ID,
		AuthorID:   note.AuthorID,
		Body:       note.Body,
		Technician: note.Technician,
		CreatedAt:  note.CreatedAt,
	}
}

func userResponse(user *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       string(user.Role),
		Department: string(user.Department),
		CreatedAt:  user.CreatedAt,
	}
}

func articleResponse(article *domain.Article) dto.ArticleResponse {
	return dto.ArticleResponse{
		ID:       article.ID,
		Title:    article.Title,
		Body:     article.Body,
		Category: article.Category,
		Keywords: article.Keywords,
	}
}

package dto

import (
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Title       string `json:"title" validate:"required,max=150"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Urgent      bool   `json:"urgent"`
	Remote      bool   `json:"remote"`
}

// AddNoteRequest payload for requester notes and technician responses.
type AddNoteRequest struct {
	Body string `json:"body" validate:"required"`
}

// ChangeStatusRequest payload.
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// FinalizeRequest payload.
type FinalizeRequest struct {
	Solution string `json:"solution" validate:"required"`
	Minutes  int    `json:"minutes" validate:"required,gt=0"`
}

// TicketSummary response.
type TicketSummary struct {
	ID           int64                 `json:"id"`
	Title        string                `json:"title"`
	RequesterID  int64                 `json:"requester_id"`
	TechnicianID *int64                `json:"technician_id,omitempty"`
	Status       domain.TicketStatus   `json:"status"`
	Priority     domain.TicketPriority `json:"priority"`
	Category     domain.TicketCategory `json:"category"`
	Department   domain.Department     `json:"department"`
	Urgent       bool                  `json:"urgent"`
	Remote       bool                  `json:"remote"`
	CreatedAt    time.Time             `json:"created_at"`
}

// TicketDetailResponse provides full ticket info including notes.
type TicketDetailResponse struct {
	ID                int64                 `json:"id"`
	Title             string                `json:"title"`
	Description       string                `json:"description"`
	RequesterID       int64                 `json:"requester_id"`
	TechnicianID      *int64                `json:"technician_id,omitempty"`
	Status            domain.TicketStatus   `json:"status"`
	Priority          domain.TicketPriority `json:"priority"`
	Category          domain.TicketCategory `json:"category"`
	Department        domain.Department     `json:"department"`
	Urgent            bool                  `json:"urgent"`
	Remote            bool                  `json:"remote"`
	CreatedAt         time.Time             `json:"created_at"`
	ResolvedAt        *time.Time            `json:"resolved_at,omitempty"`
	ResolutionMinutes *int                  `json:"resolution_minutes,omitempty"`
	Notes             []NoteResponse        `json:"notes"`
}

// NoteResponse represents one remark in the ticket history.
type NoteResponse struct {
	ID         int64     `json:"id"`
	AuthorID   int64     `json:"author_id"`
	Body       string    `json:"body"`
	Technician bool      `json:"technician"`
	CreatedAt  time.Time `json:"created_at"`
}

package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/events"
	"github.com/spec-kit/helpdesk-service/internal/store"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// TicketService coordinates the ticket lifecycle. The store underneath
// is mechanism; the permission and transition rules live here.
type TicketService struct {
	tickets    store.TicketStore
	users      store.UserDirectory
	dispatcher events.Dispatcher
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	TicketStore store.TicketStore
	Users       store.UserDirectory
	Dispatcher  events.Dispatcher
}

// TicketCreateInput describes ticket creation payload.
type TicketCreateInput struct {
	Title       string
	Description string
	Category    domain.TicketCategory
	Urgent      bool
	Remote      bool
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketStore,
		users:      deps.Users,
		dispatcher: deps.Dispatcher,
	}
}

// CreateTicket opens a ticket for the requester. The ticket inherits the
// requester's department; an urgent ticket starts at URGENT priority,
// everything else at NORMAL.
func (s *TicketService) CreateTicket(ctx context.Context, requester *domain.User, input TicketCreateInput) (*domain.Ticket, error) {
	priority := domain.TicketPriorityNormal
	if input.Urgent {
		priority = domain.TicketPriorityUrgent
	}

	ticket := &domain.Ticket{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		RequesterID: requester.ID,
		Status:      domain.TicketStatusOpen,
		Priority:    priority,
		Category:    input.Category,
		Department:  requester.Department,
		Urgent:      input.Urgent,
		Remote:      input.Remote,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		Actor:    actorFor(requester),
		Payload: events.TicketCreatedPayload{
			Title:      ticket.Title,
			Priority:   ticket.Priority,
			Category:   ticket.Category,
			Department: ticket.Department,
			Urgent:     ticket.Urgent,
		},
	})
	return ticket, nil
}

// ListMyTickets returns the requester's own tickets. The filter runs on
// the authenticated actor's id, never on client-supplied input.
func (s *TicketService) ListMyTickets(ctx context.Context, requesterID int64) ([]domain.Ticket, error) {
	return s.tickets.ListByRequester(ctx, requesterID)
}

// GetTicketForRequester fetches a ticket ensuring ownership. A ticket
// belonging to someone else yields PERMISSION_DENIED, not NOT_FOUND.
func (s *TicketService) GetTicketForRequester(ctx context.Context, requesterID, ticketID int64) (*domain.Ticket, error) {
	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.RequesterID != requesterID {
		return nil, apperrors.NewPermissionDenied("ticket belongs to another requester")
	}
	return ticket, nil
}

// AddRequesterNote appends a requester-authored note to the requester's
// own ticket.
func (s *TicketService) AddRequesterNote(ctx context.Context, requester *domain.User, ticketID int64, body string) (*domain.Note, error) {
	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.RequesterID != requester.ID {
		return nil, apperrors.NewPermissionDenied("ticket belongs to another requester")
	}
	return s.appendNote(ctx, requester, ticket.ID, body, false)
}

// GetTicket fetches any ticket for technician or administrator access.
func (s *TicketService) GetTicket(ctx context.Context, ticketID int64) (*domain.Ticket, error) {
	return s.getTicket(ctx, ticketID)
}

// ListAll returns every ticket with notes attached.
func (s *TicketService) ListAll(ctx context.Context) ([]domain.Ticket, error) {
	return s.tickets.List(ctx)
}

// TriageQueue returns every non-closed ticket in triage order: priority
// descending, oldest first within the same priority.
func (s *TicketService) TriageQueue(ctx context.Context) ([]domain.Ticket, error) {
	tickets, err := s.tickets.List(ctx)
	if err != nil {
		return nil, err
	}
	queue := make([]domain.Ticket, 0, len(tickets))
	for _, ticket := range tickets {
		if ticket.Status != domain.TicketStatusClosed {
			queue = append(queue, ticket)
		}
	}
	sort.SliceStable(queue, func(i, j int) bool {
		if queue[i].Priority.Rank() != queue[j].Priority.Rank() {
			return queue[i].Priority.Rank() > queue[j].Priority.Rank()
		}
		return queue[i].CreatedAt.Before(queue[j].CreatedAt)
	})
	return queue, nil
}

// Respond records a technician reply. An unassigned ticket is claimed as
// part of the response: the technician is assigned and the ticket moves
// to IN_PROGRESS as one unit. A response to an already-claimed ticket
// attaches the note without changing the assignment.
func (s *TicketService) Respond(ctx context.Context, technician *domain.User, ticketID int64, body string) (*domain.Ticket, *domain.Note, error) {
	claimed, err := s.tickets.Claim(ctx, ticketID, technician.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, apperrors.NewNotFound("ticket", map[string]any{"id": ticketID})
		}
		return nil, nil, apperrors.MapError(err)
	}

	note, err := s.appendNote(ctx, technician, ticketID, body, true)
	if err != nil {
		return nil, nil, err
	}

	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, nil, err
	}
	if claimed {
		s.publishEvent(ctx, events.Event{
			Type:     events.EventTicketClaimed,
			TicketID: ticket.ID,
			Actor:    actorFor(technician),
			Payload:  events.TicketClaimedPayload{TechnicianID: technician.ID},
		})
	}
	return ticket, note, nil
}

// ChangeStatus lets a technician set any of the five statuses directly,
// including skipping states. Resolution fields are untouched; they are
// only ever written by Finalize.
func (s *TicketService) ChangeStatus(ctx context.Context, technician *domain.User, ticketID int64, newStatus domain.TicketStatus) (*domain.Ticket, error) {
	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	oldStatus := ticket.Status
	ticket.Status = newStatus
	if err := s.tickets.Update(ctx, ticket); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"id": ticketID})
		}
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketStatusChanged,
		TicketID: ticket.ID,
		Actor:    actorFor(technician),
		Payload: events.TicketStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: newStatus,
		},
	})
	return ticket, nil
}

// Finalize resolves a ticket. Only the assigned technician may finalize;
// it requires a solution note and a positive duration, and it sets the
// resolution timestamp and duration together.
func (s *TicketService) Finalize(ctx context.Context, technician *domain.User, ticketID int64, solution string, minutes int) (*domain.Ticket, error) {
	if strings.TrimSpace(solution) == "" {
		return nil, apperrors.NewValidationError("solution required", nil)
	}
	if minutes <= 0 {
		return nil, apperrors.NewValidationError("resolution minutes must be positive", nil)
	}

	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.TechnicianID == nil || *ticket.TechnicianID != technician.ID {
		return nil, apperrors.NewPermissionDenied("ticket is assigned to another technician")
	}

	now := time.Now()
	ticket.Status = domain.TicketStatusResolved
	ticket.ResolvedAt = &now
	ticket.ResolutionMinutes = &minutes

	if _, err := s.appendNote(ctx, technician, ticket.ID, "SOLUTION: "+strings.TrimSpace(solution), true); err != nil {
		return nil, err
	}
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketResolved,
		TicketID: ticket.ID,
		Actor:    actorFor(technician),
		Payload: events.TicketResolvedPayload{
			TechnicianID:      technician.ID,
			ResolutionMinutes: minutes,
		},
	})
	return s.getTicket(ctx, ticket.ID)
}

func (s *TicketService) getTicket(ctx context.Context, ticketID int64) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"id": ticketID})
		}
		return nil, apperrors.MapError(err)
	}
	return ticket, nil
}

func (s *TicketService) appendNote(ctx context.Context, author *domain.User, ticketID int64, body string, technician bool) (*domain.Note, error) {
	note := &domain.Note{
		TicketID:   ticketID,
		AuthorID:   author.ID,
		Body:       strings.TrimSpace(body),
		Technician: technician,
	}
	if err := s.tickets.AddNote(ctx, note); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"id": ticketID})
		}
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketNoteAdded,
		TicketID: ticketID,
		Actor:    actorFor(author),
		Payload: events.TicketNoteAddedPayload{
			NoteID:      note.ID,
			AuthorID:    note.AuthorID,
			Technician:  note.Technician,
			BodyPreview: stringPreview(note.Body, 120),
		},
	})
	return note, nil
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func actorFor(user *domain.User) events.Actor {
	return events.Actor{UserID: user.ID, Role: user.Role}
}

func stringPreview(body string, max int) string {
	body = strings.TrimSpace(body)
	if len(body) <= max {
		return body
	}
	if max <= 3 {
		return body[:max]
	}
	return body[:max-3] + "..."
}

package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// TicketStore holds tickets and their notes. It is pure mechanism:
// permission and transition policy live in the service layer.
type TicketStore interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	Update(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id int64) (*domain.Ticket, error)
	List(ctx context.Context) ([]domain.Ticket, error)
	ListByRequester(ctx context.Context, userID int64) ([]domain.Ticket, error)
	ListByTechnician(ctx context.Context, userID int64) ([]domain.Ticket, error)
	Claim(ctx context.Context, ticketID, technicianID int64) (bool, error)
	AddNote(ctx context.Context, note *domain.Note) error
}

type ticketStore struct {
	mu         sync.RWMutex
	tickets    []domain.Ticket
	notes      []domain.Note
	nextID     int64
	nextNoteID int64
}

// NewTicketStore instantiates the in-memory store.
func NewTicketStore() TicketStore {
	return &ticketStore{nextID: 1, nextNoteID: 1}
}

func (s *ticketStore) Create(ctx context.Context, ticket *domain.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ticket.ID = s.nextID
	s.nextID++
	if ticket.Status == "" {
		ticket.Status = domain.TicketStatusOpen
	}
	if ticket.CreatedAt.IsZero() {
		ticket.CreatedAt = time.Now()
	}
	ticket.Notes = []domain.Note{}

	stored := *ticket
	stored.Notes = nil
	s.tickets = append(s.tickets, stored)
	return nil
}

// Update replaces the mutable fields (status, technician, resolution
// timestamp and duration) of the stored ticket matched by id.
func (s *ticketStore) Update(ctx context.Context, ticket *domain.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tickets {
		if s.tickets[i].ID == ticket.ID {
			s.tickets[i].Status = ticket.Status
			s.tickets[i].TechnicianID = ticket.TechnicianID
			s.tickets[i].ResolvedAt = ticket.ResolvedAt
			s.tickets[i].ResolutionMinutes = ticket.ResolutionMinutes
			return nil
		}
	}
	return ErrNotFound
}

func (s *ticketStore) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.tickets {
		if s.tickets[i].ID == id {
			ticket := s.tickets[i]
			ticket.Notes = s.notesForLocked(id)
			return &ticket, nil
		}
	}
	return nil, ErrNotFound
}

func (s *ticketStore) List(ctx context.Context) ([]domain.Ticket, error) {
	return s.listWhere(func(t *domain.Ticket) bool { return true })
}

func (s *ticketStore) ListByRequester(ctx context.Context, userID int64) ([]domain.Ticket, error) {
	return s.listWhere(func(t *domain.Ticket) bool { return t.RequesterID == userID })
}

func (s *ticketStore) ListByTechnician(ctx context.Context, userID int64) ([]domain.Ticket, error) {
	return s.listWhere(func(t *domain.Ticket) bool {
		return t.TechnicianID != nil && *t.TechnicianID == userID
	})
}

// Claim assigns the technician and moves the ticket to IN_PROGRESS as a
// single unit, but only while no technician holds the ticket. The first
// claimer wins; later calls report false and leave the ticket untouched.
func (s *ticketStore) Claim(ctx context.Context, ticketID, technicianID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tickets {
		if s.tickets[i].ID == ticketID {
			if s.tickets[i].TechnicianID != nil {
				return false, nil
			}
			id := technicianID
			s.tickets[i].TechnicianID = &id
			s.tickets[i].Status = domain.TicketStatusInProgress
			return true, nil
		}
	}
	return false, ErrNotFound
}

func (s *ticketStore) AddNote(ctx context.Context, note *domain.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.tickets {
		if s.tickets[i].ID == note.TicketID {
			found = true
			break
		}
	}
	if !found {
		return ErrNotFound
	}

	note.ID = s.nextNoteID
	s.nextNoteID++
	note.CreatedAt = time.Now()
	s.notes = append(s.notes, *note)
	return nil
}

func (s *ticketStore) listWhere(match func(*domain.Ticket) bool) ([]domain.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Ticket
	for i := range s.tickets {
		if match(&s.tickets[i]) {
			ticket := s.tickets[i]
			ticket.Notes = s.notesForLocked(ticket.ID)
			out = append(out, ticket)
		}
	}
	return out, nil
}

// notesForLocked returns the ticket's notes ordered by creation time
// ascending. Callers must hold at least the read lock.
func (s *ticketStore) notesForLocked(ticketID int64) []domain.Note {
	notes := []domain.Note{}
	for i := range s.notes {
		if s.notes[i].TicketID == ticketID {
			notes = append(notes, s.notes[i])
		}
	}
	sort.SliceStable(notes, func(i, j int) bool {
		if notes[i].CreatedAt.Equal(notes[j].CreatedAt) {
			return notes[i].ID < notes[j].ID
		}
		return notes[i].CreatedAt.Before(notes[j].CreatedAt)
	})
	return notes
}

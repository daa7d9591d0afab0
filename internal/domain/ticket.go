package domain

import (
	"fmt"
	"time"
)

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "OPEN"
	TicketStatusInProgress TicketStatus = "IN_PROGRESS"
	TicketStatusWaiting    TicketStatus = "WAITING"
	TicketStatusResolved   TicketStatus = "RESOLVED"
	TicketStatusClosed     TicketStatus = "CLOSED"
)

// ParseTicketStatus validates a status value received from the outside.
func ParseTicketStatus(value string) (TicketStatus, error) {
	switch TicketStatus(value) {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusWaiting, TicketStatusResolved, TicketStatusClosed:
		return TicketStatus(value), nil
	}
	return "", fmt.Errorf("unknown ticket status %q", value)
}

// TicketPriority enumerates triage urgency.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "LOW"
	TicketPriorityNormal TicketPriority = "NORMAL"
	TicketPriorityHigh   TicketPriority = "HIGH"
	TicketPriorityUrgent TicketPriority = "URGENT"
)

// ParseTicketPriority validates a priority value received from the outside.
func ParseTicketPriority(value string) (TicketPriority, error) {
	switch TicketPriority(value) {
	case TicketPriorityLow, TicketPriorityNormal, TicketPriorityHigh, TicketPriorityUrgent:
		return TicketPriority(value), nil
	}
	return "", fmt.Errorf("unknown ticket priority %q", value)
}

// Rank orders priorities for triage; higher means more urgent.
func (p TicketPriority) Rank() int {
	switch p {
	case TicketPriorityUrgent:
		return 4
	case TicketPriorityHigh:
		return 3
	case TicketPriorityNormal:
		return 2
	case TicketPriorityLow:
		return 1
	}
	return 0
}

// TicketCategory enumerates the kind of problem reported.
type TicketCategory string

const (
	TicketCategoryHardware TicketCategory = "HARDWARE"
	TicketCategorySoftware TicketCategory = "SOFTWARE"
	TicketCategoryNetwork  TicketCategory = "NETWORK"
	TicketCategoryEmail    TicketCategory = "EMAIL"
	TicketCategoryPrinter  TicketCategory = "PRINTER"
	TicketCategorySystem   TicketCategory = "SYSTEM"
	TicketCategoryOther    TicketCategory = "OTHER"
)

// ParseTicketCategory validates a category value received from the outside.
func ParseTicketCategory(value string) (TicketCategory, error) {
	switch TicketCategory(value) {
	case TicketCategoryHardware, TicketCategorySoftware, TicketCategoryNetwork,
		TicketCategoryEmail, TicketCategoryPrinter, TicketCategorySystem, TicketCategoryOther:
		return TicketCategory(value), nil
	}
	return "", fmt.Errorf("unknown ticket category %q", value)
}

// Ticket is the aggregate for reported work. TechnicianID is nil until a
// technician claims the ticket; ResolvedAt and ResolutionMinutes are nil
// until the assigned technician finalizes it, and are always set together.
type Ticket struct {
	ID                int64
	Title             string
	Description       string
	RequesterID       int64
	TechnicianID      *int64
	Status            TicketStatus
	Priority          TicketPriority
	Category          TicketCategory
	Department        Department
	Urgent            bool
	Remote            bool
	CreatedAt         time.Time
	ResolvedAt        *time.Time
	ResolutionMinutes *int
	Notes             []Note
}

// Note is an immutable remark attached to a ticket, tagged by author role.
type Note struct {
	ID         int64
	TicketID   int64
	AuthorID   int64
	Body       string
	Technician bool
	CreatedAt  time.Time
}

package service

import (
	"context"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/store"
)

// SystemReport aggregates the current ticket and user collections.
// AverageResolutionMinutes is nil when no ticket carries a resolution
// duration: "no data" is distinct from an average of zero minutes.
type SystemReport struct {
	TotalUsers               int                            `json:"total_users"`
	TotalTechnicians         int                            `json:"total_technicians"`
	TotalTickets             int                            `json:"total_tickets"`
	OpenTickets              int                            `json:"open_tickets"`
	ResolvedTickets          int                            `json:"resolved_tickets"`
	UrgentTickets            int                            `json:"urgent_tickets"`
	ByStatus                 map[domain.TicketStatus]int    `json:"by_status"`
	ByCategory               map[domain.TicketCategory]int  `json:"by_category"`
	ByPriority               map[domain.TicketPriority]int  `json:"by_priority"`
	ByDepartment             map[domain.Department]int      `json:"by_department"`
	AverageResolutionMinutes *float64                       `json:"average_resolution_minutes,omitempty"`
}

// TechnicianReport summarizes one technician's assigned workload.
type TechnicianReport struct {
	TechnicianID             int64    `json:"technician_id"`
	TotalAssigned            int      `json:"total_assigned"`
	Resolved                 int      `json:"resolved"`
	InProgress               int      `json:"in_progress"`
	AverageResolutionMinutes *float64 `json:"average_resolution_minutes,omitempty"`
}

// ReportService computes reports on demand; nothing is cached or stored.
type ReportService struct {
	tickets store.TicketStore
	users   store.UserDirectory
}

// NewReportService constructs the service.
func NewReportService(tickets store.TicketStore, users store.UserDirectory) *ReportService {
	return &ReportService{tickets: tickets, users: users}
}

// Overview builds the system-wide report.
func (s *ReportService) Overview(ctx context.Context) (*SystemReport, error) {
	tickets, err := s.tickets.List(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	report := &SystemReport{
		TotalUsers:   len(users),
		TotalTickets: len(tickets),
		ByStatus:     map[domain.TicketStatus]int{},
		ByCategory:   map[domain.TicketCategory]int{},
		ByPriority:   map[domain.TicketPriority]int{},
		ByDepartment: map[domain.Department]int{},
	}
	for _, user := range users {
		if user.Role == domain.RoleTechnician {
			report.TotalTechnicians++
		}
	}
	for _, ticket := range tickets {
		report.ByStatus[ticket.Status]++
		report.ByCategory[ticket.Category]++
		report.ByPriority[ticket.Priority]++
		report.ByDepartment[ticket.Department]++
		if ticket.Status == domain.TicketStatusOpen {
			report.OpenTickets++
		}
		if ticket.Status == domain.TicketStatusResolved {
			report.ResolvedTickets++
		}
		if ticket.Urgent {
			report.UrgentTickets++
		}
	}
	report.AverageResolutionMinutes = averageResolution(tickets)
	return report, nil
}

// ForTechnician builds the per-technician report over their assigned tickets.
func (s *ReportService) ForTechnician(ctx context.Context, technicianID int64) (*TechnicianReport, error) {
	tickets, err := s.tickets.ListByTechnician(ctx, technicianID)
	if err != nil {
		return nil, err
	}

	report := &TechnicianReport{
		TechnicianID:  technicianID,
		TotalAssigned: len(tickets),
	}
	for _, ticket := range tickets {
		switch ticket.Status {
		case domain.TicketStatusResolved:
			report.Resolved++
		case domain.TicketStatusInProgress:
			report.InProgress++
		}
	}
	report.AverageResolutionMinutes = averageResolution(tickets)
	return report, nil
}

// averageResolution returns nil, not zero, when no ticket in the set has
// a resolution duration.
func averageResolution(tickets []domain.Ticket) *float64 {
	var sum, count int
	for _, ticket := range tickets {
		if ticket.ResolutionMinutes != nil {
			sum += *ticket.ResolutionMinutes
			count++
		}
	}
	if count == 0 {
		return nil
	}
	avg := float64(sum) / float64(count)
	return &avg
}

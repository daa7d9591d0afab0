package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

func TestOverviewAverageAbsentWithoutResolvedTickets(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()
	reports := NewReportService(f.tickets, f.users)

	_, err := f.svc.CreateTicket(ctx, f.requester, TicketCreateInput{
		Title:       "open ticket",
		Description: "d",
		Category:    domain.TicketCategoryOther,
	})
	require.NoError(t, err)

	report, err := reports.Overview(ctx)
	require.NoError(t, err)
	assert.Nil(t, report.AverageResolutionMinutes, "no resolved ticket means no average, not zero")
	assert.Equal(t, 1, report.TotalTickets)
	assert.Equal(t, 1, report.OpenTickets)
}

func TestOverviewCountsAndAverage(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()
	reports := NewReportService(f.tickets, f.users)

	first, err := f.svc.CreateTicket(ctx, f.requester, TicketCreateInput{
		Title:       "a",
		Description: "d",
		Category:    domain.TicketCategoryHardware,
		Urgent:      true,
	})
	require.NoError(t, err)
	second, err := f.svc.CreateTicket(ctx, f.other, TicketCreateInput{
		Title:       "b",
		Description: "d",
		Category:    domain.TicketCategoryEmail,
	})
	require.NoError(t, err)

	_, _, err = f.svc.Respond(ctx, f.tech, first.ID, "on it")
	require.NoError(t, err)
	_, err = f.svc.Finalize(ctx, f.tech, first.ID, "swapped the unit", 30)
	require.NoError(t, err)

	_, _, err = f.svc.Respond(ctx, f.tech, second.ID, "on it")
	require.NoError(t, err)
	_, err = f.svc.Finalize(ctx, f.tech, second.ID, "reset the password", 60)
	require.NoError(t, err)

	report, err := reports.Overview(ctx)
	require.NoError(t, err)

	assert.Equal(t, 5, report.TotalUsers)
	assert.Equal(t, 2, report.TotalTechnicians)
	assert.Equal(t, 2, report.TotalTickets)
	assert.Equal(t, 2, report.ResolvedTickets)
	assert.Equal(t, 1, report.UrgentTickets)
	assert.Equal(t, 2, report.ByStatus[domain.TicketStatusResolved])
	assert.Equal(t, 1, report.ByCategory[domain.TicketCategoryHardware])
	assert.Equal(t, 1, report.ByDepartment[domain.DepartmentSales])
	assert.Equal(t, 1, report.ByDepartment[domain.DepartmentHR])
	require.NotNil(t, report.AverageResolutionMinutes)
	assert.InDelta(t, 45.0, *report.AverageResolutionMinutes, 0.001)
}

func TestTechnicianReport(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()
	reports := NewReportService(f.tickets, f.users)

	first, err := f.svc.CreateTicket(ctx, f.requester, TicketCreateInput{
		Title:       "a",
		Description: "d",
		Category:    domain.TicketCategoryOther,
	})
	require.NoError(t, err)
	second, err := f.svc.CreateTicket(ctx, f.other, TicketCreateInput{
		Title:       "b",
		Description: "d",
		Category:    domain.TicketCategoryOther,
	})
	require.NoError(t, err)

	_, _, err = f.svc.Respond(ctx, f.tech, first.ID, "on it")
	require.NoError(t, err)
	_, err = f.svc.Finalize(ctx, f.tech, first.ID, "done", 20)
	require.NoError(t, err)
	_, _, err = f.svc.Respond(ctx, f.tech, second.ID, "on it")
	require.NoError(t, err)

	report, err := reports.ForTechnician(ctx, f.tech.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, report.TotalAssigned)
	assert.Equal(t, 1, report.Resolved)
	assert.Equal(t, 1, report.InProgress)
	require.NotNil(t, report.AverageResolutionMinutes)
	assert.InDelta(t, 20.0, *report.AverageResolutionMinutes, 0.001)

	// A technician with no assignments has an empty report and no average.
	empty, err := reports.ForTechnician(ctx, f.otherTech.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.TotalAssigned)
	assert.Nil(t, empty.AverageResolutionMinutes)
}

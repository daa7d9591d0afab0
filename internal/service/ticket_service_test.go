package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/store"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

type lifecycleFixture struct {
	svc       *TicketService
	tickets   store.TicketStore
	users     store.UserDirectory
	requester *domain.User
	other     *domain.User
	tech      *domain.User
	otherTech *domain.User
}

func newLifecycleFixture(t *testing.T) *lifecycleFixture {
	t.Helper()
	ctx := context.Background()

	users := store.NewUserDirectory(false)
	tickets := store.NewTicketStore()

	mk := func(name string, role domain.Role, dept domain.Department) *domain.User {
		user := &domain.User{Name: name, Email: name + "@corp.test", Role: role, Department: dept}
		require.NoError(t, users.Create(ctx, user))
		return user
	}

	return &lifecycleFixture{
		svc: NewTicketService(TicketDependencies{
			TicketStore: tickets,
			Users:       users,
		}),
		tickets:   tickets,
		users:     users,
		requester: mk("carl", domain.RoleRequester, domain.DepartmentSales),
		other:     mk("anna", domain.RoleRequester, domain.DepartmentHR),
		tech:      mk("john", domain.RoleTechnician, domain.DepartmentIT),
		otherTech: mk("maria", domain.RoleTechnician, domain.DepartmentIT),
	}
}

func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, code, domainErr.Code)
}

func TestCreateTicketCopiesRequesterDepartment(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	ticket, err := f.svc.CreateTicket(ctx, f.requester, TicketCreateInput{
		Title:       "monitor flickers",
		Description: "screen flickers every few minutes",
		Category:    domain.TicketCategoryHardware,
	})
	require.NoError(t, err)

	assert.Equal(t, f.requester.Department, ticket.Department)
	assert.Equal(t, f.requester.ID, ticket.RequesterID)
	assert.Equal(t, domain.TicketStatusOpen, ticket.Status)
	assert.Equal(t, domain.TicketPriorityNormal, ticket.Priority)
	assert.Nil(t, ticket.TechnicianID)
}

func TestCreateTicketUrgentStartsAtUrgentPriority(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	ticket, err := f.svc.CreateTicket(ctx, f.requester, TicketCreateInput{
		Title:       "server room is down",
		Description: "nobody can work",
		Category:    domain.TicketCategorySystem,
		Urgent:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TicketPriorityUrgent, ticket.Priority)
	assert.True(t, ticket.Urgent)
}

func TestRespondClaimsUnassignedTicket(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateTicket(ctx, f.requester, TicketCreateInput{
		Title:       "no sound",
		Description: "speakers silent",
		Category:    domain.TicketCategoryHardware,
	})
	require.NoError(t, err)

	ticket, note, err := f.svc.Respond(ctx, f.tech, created.ID, "checking the audio driver")
	require.NoError(t, err)

	assert.Equal(t, domain.TicketStatusInProgress, ticket.Status)
	require.NotNil(t, ticket.TechnicianID)
	assert.Equal(t, f.tech.ID, *ticket.TechnicianID)
	assert.True(t, note.Technician)
	assert.Equal(t, f.tech.ID, note.AuthorID)
}

func TestRespondDoesNotReassignClaimedTicket(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateTicket(ctx, f.requester, TicketCreateInput{
		Title:       "no sound",
		Description: "speakers silent",
		Category:    domain.TicketCategoryHardware,
	})
	require.NoError(t, err)

	_, _, err = f.svc.Respond(ctx, f.tech, created.ID, "taking this one")
	require.NoError(t, err)

	ticket, _, err := f.svc.Respond(ctx, f.otherTech, created.ID, "adding context")
	require.NoError(t, err)

	require.NotNil(t, ticket.TechnicianID)
	assert.Equal(t, f.tech.ID, *ticket.TechnicianID, "second responder must not take over")
	assert.Len(t, ticket.Notes, 2)
}

func TestRespondUnknownTicket(t *testing.T) {
	f := newLifecycleFixture(t)

	_, _, err := f.svc.Respond(context.Background(), f.tech, 99, "hello?")
	assertErrorCode(t, err, "NOT_FOUND")
}

func TestGetTicketForRequesterOwnership(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateTicket(ctx, f.requester, TicketCreateInput{
		Title:       "vpn drops",
		Description: "disconnects hourly",
		Category:    domain.TicketCategoryNetwork,
	})
	require.NoError(t, err)

	got, err := f.svc.GetTicketForRequester(ctx, f.requester.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = f.svc.GetTicketForRequester(ctx, f.other.ID, created.ID)
	assertErrorCode(t, err, "PERMISSION_DENIED")

	_, err = f.svc.GetTicketForRequester(ctx, f.requester.ID, 99)
	assertErrorCode(t, err, "NOT_FOUND")
}

func TestAddRequesterNote(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateTicket(ctx, f.requester, TicketCreateInput{
		Title:       "vpn drops",
		Description: "disconnects hourly",
		Category:    domain.TicketCategoryNetwork,
	})
	require.NoError(t, err)

	note, err := f.svc.AddRequesterNote(ctx, f.requester, created.ID, "happens on wifi too")
	require.NoError(t, err)
	assert.False(t, note.Technician)
	assert.Equal(t, f.requester.ID, note.AuthorID)

	_, err = f.svc.AddRequesterNote(ctx, f.other, created.ID, "me too")
	assertErrorCode(t, err, "PERMISSION_DENIED")
}

func TestListMyTicketsFiltersByActor(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	mine, err := f.svc.CreateTicket(ctx, f.requester, TicketCreateInput{
		Title:       "mine",
		Description: "x",
		Category:    domain.TicketCategoryOther,
	})
	require.NoError(t, err)
	_, err = f.svc.CreateTicket(ctx, f.other, TicketCreateInput{
		Title:       "not mine",
		Description: "y",
		Category:    domain.TicketCategoryOther,
	})
	require.NoError(t, err)

	tickets, err := f.svc.ListMyTickets(ctx, f.requester.ID)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, mine.ID, tickets[0].ID)
}

func TestFinalizeByAssignedTechnician(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateTicket(ctx, f.requester, TicketCreateInput{
		Title:       "printer offline",
		Description: "queue stuck",
		Category:    domain.TicketCategoryPrinter,
	})
	require.NoError(t, err)
	_, _, err = f.svc.Respond(ctx, f.tech, created.ID, "restarting the spooler")
	require.NoError(t, err)

	ticket, err := f.svc.Finalize(ctx, f.tech, created.ID, "fixed", 45)
	require.NoError(t, err)

	assert.Equal(t, domain.TicketStatusResolved, ticket.Status)
	require.NotNil(t, ticket.ResolutionMinutes)
	assert.Equal(t, 45, *ticket.ResolutionMinutes)
	require.NotNil(t, ticket.ResolvedAt)

	last := ticket.Notes[len(ticket.Notes)-1]
	assert.Equal(t, "SOLUTION: fixed", last.Body)
	assert.True(t, last.Technician)
}

func TestFinalizeByOtherTechnicianRejected(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateTicket(ctx, f.requester, TicketCreateInput{
		Title:       "printer offline",
		Description: "queue stuck",
		Category:    domain.TicketCategoryPrinter,
	})
	require.NoError(t, err)
	_, _, err = f.svc.Respond(ctx, f.tech, created.ID, "on it")
	require.NoError(t, err)

	_, err = f.svc.Finalize(ctx, f.otherTech, created.ID, "done", 10)
	assertErrorCode(t, err, "PERMISSION_DENIED")

	// The ticket must be untouched by the rejected attempt.
	ticket, err := f.svc.GetTicket(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusInProgress, ticket.Status)
	assert.Nil(t, ticket.ResolvedAt)
	assert.Nil(t, ticket.ResolutionMinutes)
	assert.Len(t, ticket.Notes, 1)
}

func TestFinalizeUnassignedTicketRejected(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateTicket(ctx, f.requester, TicketCreateInput{
		Title:       "printer offline",
		Description: "queue stuck",
		Category:    domain.TicketCategoryPrinter,
	})
	require.NoError(t, err)

	_, err = f.svc.Finalize(ctx, f.tech, created.ID, "done", 10)
	assertErrorCode(t, err, "PERMISSION_DENIED")
}

func TestFinalizeValidation(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateTicket(ctx, f.requester, TicketCreateInput{
		Title:       "printer offline",
		Description: "queue stuck",
		Category:    domain.TicketCategoryPrinter,
	})
	require.NoError(t, err)
	_, _, err = f.svc.Respond(ctx, f.tech, created.ID, "on it")
	require.NoError(t, err)

	_, err = f.svc.Finalize(ctx, f.tech, created.ID, "done", 0)
	assertErrorCode(t, err, "VALIDATION_FAILED")

	_, err = f.svc.Finalize(ctx, f.tech, created.ID, "   ", 10)
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func TestChangeStatusLeavesResolutionFieldsAlone(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateTicket(ctx, f.requester, TicketCreateInput{
		Title:       "slow laptop",
		Description: "takes minutes to boot",
		Category:    domain.TicketCategorySoftware,
	})
	require.NoError(t, err)

	ticket, err := f.svc.ChangeStatus(ctx, f.tech, created.ID, domain.TicketStatusWaiting)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusWaiting, ticket.Status)
	assert.Nil(t, ticket.ResolvedAt)
	assert.Nil(t, ticket.ResolutionMinutes)

	_, err = f.svc.ChangeStatus(ctx, f.tech, 99, domain.TicketStatusClosed)
	assertErrorCode(t, err, "NOT_FOUND")
}

func TestTriageQueueOrdering(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	priorities := []domain.TicketPriority{
		domain.TicketPriorityNormal,
		domain.TicketPriorityUrgent,
		domain.TicketPriorityHigh,
		domain.TicketPriorityUrgent,
	}
	for i, priority := range priorities {
		ticket := &domain.Ticket{
			Title:       "ticket",
			Description: "d",
			RequesterID: f.requester.ID,
			Priority:    priority,
			Category:    domain.TicketCategoryOther,
			Department:  f.requester.Department,
		}
		require.NoError(t, f.tickets.Create(ctx, ticket), "ticket %d", i)
	}

	// A closed ticket never shows up in the queue.
	closed := &domain.Ticket{
		Title:       "old",
		Description: "d",
		RequesterID: f.requester.ID,
		Priority:    domain.TicketPriorityUrgent,
		Category:    domain.TicketCategoryOther,
		Department:  f.requester.Department,
		Status:      domain.TicketStatusClosed,
	}
	require.NoError(t, f.tickets.Create(ctx, closed))

	queue, err := f.svc.TriageQueue(ctx)
	require.NoError(t, err)
	require.Len(t, queue, 4)

	// Urgent tickets first in creation order, then high, then normal.
	assert.Equal(t, int64(2), queue[0].ID)
	assert.Equal(t, int64(4), queue[1].ID)
	assert.Equal(t, int64(3), queue[2].ID)
	assert.Equal(t, int64(1), queue[3].ID)
}

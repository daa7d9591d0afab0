package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/store"
)

// Stores bundles the collections the example data is loaded into.
type Stores struct {
	Users    store.UserDirectory
	Tickets  store.TicketStore
	Articles store.ArticleIndex
}

// Load populates the stores with a small working data set: an
// administrator, two technicians, two requesters, three knowledge
// articles and two tickets (one open and urgent, one already claimed by
// the first technician). Everything goes through the normal store APIs
// so ids are assigned the same way they are at runtime.
func Load(ctx context.Context, stores Stores, logger *zap.Logger) error {
	users := []domain.User{
		{Name: "System Administrator", Email: "admin@example.com", Role: domain.RoleAdministrator, Department: domain.DepartmentIT},
		{Name: "John Reyes", Email: "john.reyes@example.com", Role: domain.RoleTechnician, Department: domain.DepartmentIT},
		{Name: "Maria Soto", Email: "maria.soto@example.com", Role: domain.RoleTechnician, Department: domain.DepartmentIT},
		{Name: "Carl Silva", Email: "carl.silva@example.com", Role: domain.RoleRequester, Department: domain.DepartmentSales},
		{Name: "Anna Santos", Email: "anna.santos@example.com", Role: domain.RoleRequester, Department: domain.DepartmentHR},
	}
	ids := make([]int64, 0, len(users))
	for i := range users {
		if err := stores.Users.Create(ctx, &users[i]); err != nil {
			return fmt.Errorf("seed user %q: %w", users[i].Email, err)
		}
		ids = append(ids, users[i].ID)
	}

	articles := []domain.Article{
		{
			Title:    "Fixing common printing problems",
			Category: domain.TicketCategoryPrinter,
			Body:     "1. Check the printer is powered on\n2. Check the cables\n3. Check the print queue\n4. Restart the print spooler",
			Keywords: []string{"printer", "print", "paper", "toner"},
		},
		{
			Title:    "Internet connection troubleshooting",
			Category: domain.TicketCategoryNetwork,
			Body:     "1. Check the network cable\n2. Ping the gateway\n3. Check IP settings\n4. Restart the network adapter",
			Keywords: []string{"internet", "network", "connection", "ip"},
		},
		{
			Title:    "Recovering your email password",
			Category: domain.TicketCategoryEmail,
			Body:     "1. Open the recovery portal\n2. Enter your corporate email\n3. Check the recovery inbox\n4. Set a new password",
			Keywords: []string{"email", "password", "outlook", "recover"},
		},
	}
	for i := range articles {
		if err := stores.Articles.Create(ctx, &articles[i]); err != nil {
			return fmt.Errorf("seed article %q: %w", articles[i].Title, err)
		}
	}

	hardware := domain.Ticket{
		Title:       "Computer will not power on",
		Description: "My computer has not been turning on since yesterday",
		RequesterID: ids[3],
		Category:    domain.TicketCategoryHardware,
		Department:  domain.DepartmentSales,
		Priority:    domain.TicketPriorityHigh,
		Urgent:      true,
	}
	if err := stores.Tickets.Create(ctx, &hardware); err != nil {
		return fmt.Errorf("seed hardware ticket: %w", err)
	}

	email := domain.Ticket{
		Title:       "Cannot access my email",
		Description: "I forgot my Outlook password",
		RequesterID: ids[4],
		Category:    domain.TicketCategoryEmail,
		Department:  domain.DepartmentHR,
		Priority:    domain.TicketPriorityNormal,
		Remote:      true,
	}
	if err := stores.Tickets.Create(ctx, &email); err != nil {
		return fmt.Errorf("seed email ticket: %w", err)
	}
	if _, err := stores.Tickets.Claim(ctx, email.ID, ids[1]); err != nil {
		return fmt.Errorf("seed email ticket claim: %w", err)
	}

	logger.Info("example data loaded",
		zap.Int("users", len(users)),
		zap.Int("articles", len(articles)),
		zap.Int("tickets", 2),
	)
	return nil
}

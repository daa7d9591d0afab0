package domain

// Article is a knowledge-base entry matched by keyword search.
type Article struct {
	ID       int64
	Title    string
	Body     string
	Category TicketCategory
	Keywords []string
}

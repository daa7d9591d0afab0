package dto

import "github.com/spec-kit/helpdesk-service/internal/domain"

// CreateArticleRequest payload.
type CreateArticleRequest struct {
	Title    string   `json:"title" validate:"required,max=150"`
	Body     string   `json:"body" validate:"required"`
	Category string   `json:"category" validate:"required"`
	Keywords []string `json:"keywords"`
}

// ArticleResponse represents a knowledge-base entry.
type ArticleResponse struct {
	ID       int64                 `json:"id"`
	Title    string                `json:"title"`
	Body     string                `json:"body"`
	Category domain.TicketCategory `json:"category"`
	Keywords []string              `json:"keywords"`
}

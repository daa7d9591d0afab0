package service

import (
	"context"
	"strings"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/store"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// ArticleService serves the knowledge base.
type ArticleService struct {
	articles store.ArticleIndex
}

// NewArticleService constructs the service.
func NewArticleService(articles store.ArticleIndex) *ArticleService {
	return &ArticleService{articles: articles}
}

// List returns every article in insertion order.
func (s *ArticleService) List(ctx context.Context) ([]domain.Article, error) {
	return s.articles.List(ctx)
}

// Search matches the term against titles, bodies and keywords. A blank
// term returns everything.
func (s *ArticleService) Search(ctx context.Context, term string) ([]domain.Article, error) {
	return s.articles.Search(ctx, term)
}

// Create adds a new article.
func (s *ArticleService) Create(ctx context.Context, title, body string, category domain.TicketCategory, keywords []string) (*domain.Article, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperrors.NewValidationError("title required", nil)
	}

	article := &domain.Article{
		Title:    title,
		Body:     strings.TrimSpace(body),
		Category: category,
		Keywords: keywords,
	}
	if err := s.articles.Create(ctx, article); err != nil {
		return nil, apperrors.MapError(err)
	}
	return article, nil
}

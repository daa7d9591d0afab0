package store

import (
	"context"
	"strings"
	"sync"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// ArticleIndex holds knowledge articles and supports keyword search.
type ArticleIndex interface {
	List(ctx context.Context) ([]domain.Article, error)
	Search(ctx context.Context, term string) ([]domain.Article, error)
	Create(ctx context.Context, article *domain.Article) error
}

type articleIndex struct {
	mu       sync.RWMutex
	articles []domain.Article
	nextID   int64
}

// NewArticleIndex instantiates the in-memory index.
func NewArticleIndex() ArticleIndex {
	return &articleIndex{nextID: 1}
}

func (x *articleIndex) List(ctx context.Context) ([]domain.Article, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	out := make([]domain.Article, len(x.articles))
	copy(out, x.articles)
	return out, nil
}

// Search matches the term as a case-insensitive substring of the title,
// body, or any keyword. A blank term returns every article.
func (x *articleIndex) Search(ctx context.Context, term string) ([]domain.Article, error) {
	if strings.TrimSpace(term) == "" {
		return x.List(ctx)
	}

	x.mu.RLock()
	defer x.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(term))
	var out []domain.Article
	for i := range x.articles {
		if articleMatches(&x.articles[i], needle) {
			out = append(out, x.articles[i])
		}
	}
	return out, nil
}

func (x *articleIndex) Create(ctx context.Context, article *domain.Article) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	article.ID = x.nextID
	x.nextID++
	x.articles = append(x.articles, *article)
	return nil
}

func articleMatches(article *domain.Article, needle string) bool {
	if strings.Contains(strings.ToLower(article.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(article.Body), needle) {
		return true
	}
	for _, keyword := range article.Keywords {
		if strings.Contains(strings.ToLower(keyword), needle) {
			return true
		}
	}
	return false
}

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/service"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// ArticlesHandler serves the knowledge base.
type ArticlesHandler struct {
	service *service.ArticleService
}

// NewArticlesHandler constructs handler.
func NewArticlesHandler(articleService *service.ArticleService) *ArticlesHandler {
	return &ArticlesHandler{service: articleService}
}

// Search GET /articles?q=term. A blank term lists everything.
func (h *ArticlesHandler) Search(c *fiber.Ctx) error {
	articles, err := h.service.Search(c.Context(), c.Query("q"))
	if err != nil {
		return err
	}
	items := make([]dto.ArticleResponse, 0, len(articles))
	for i := range articles {
		items = append(items, articleResponse(&articles[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Create POST /admin/articles.
func (h *ArticlesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateArticleRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	category, err := domain.ParseTicketCategory(req.Category)
	if err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}
	article, err := h.service.Create(c.Context(), req.Title, req.Body, category, req.Keywords)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": articleResponse(article)})
}

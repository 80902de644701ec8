package handlers

import (
	"net/http"
	"strings"

	"github.com/jaehyo-dev/school-hub/backend/internal/models"
	"github.com/jaehyo-dev/school-hub/backend/internal/policy"
	"github.com/jaehyo-dev/school-hub/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// ArticleHandler serves the curated news and club pages backed by MongoDB.
// Reads are public; writes are admin-only.
type ArticleHandler struct {
	articleRepository repositories.ArticleRepository
	kind              models.ArticleKind
	resolver          *policy.Resolver
}

// NewArticleHandler creates an ArticleHandler for one article kind
func NewArticleHandler(articleRepo repositories.ArticleRepository, kind models.ArticleKind, resolver *policy.Resolver) *ArticleHandler {
	return &ArticleHandler{articleRepository: articleRepo, kind: kind, resolver: resolver}
}

// RegisterPublicRoutes registers the article routes readable by anyone
func (h *ArticleHandler) RegisterPublicRoutes(g *echo.Group, prefix string) {
	g.GET(prefix, h.ListArticles)
	g.GET(prefix+"/:id", h.GetArticle)
}

// RegisterArticleRoutes registers the admin-only article routes
func (h *ArticleHandler) RegisterArticleRoutes(g *echo.Group, prefix string) {
	g.POST(prefix, h.CreateArticle)
	g.PUT(prefix+"/:id", h.UpdateArticle)
	g.DELETE(prefix+"/:id", h.DeleteArticle)
}

func (h *ArticleHandler) requireAdmin(c echo.Context) (*models.User, error) {
	claims := claimsFrom(c)
	if claims == nil {
		return nil, policy.ErrUnauthorized
	}
	return h.resolver.RequireAdmin(claims.FirebaseUID)
}

// ListArticles returns published articles; includeAll shows drafts to admins
func (h *ArticleHandler) ListArticles(c echo.Context) error {
	includeAll := false
	if c.QueryParam("includeAll") == "true" {
		if _, err := h.requireAdmin(c); err == nil {
			includeAll = true
		}
	}

	articles, err := h.articleRepository.GetArticles(c.Request().Context(), h.kind, includeAll)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, articles)
}

// GetArticle returns one article
func (h *ArticleHandler) GetArticle(c echo.Context) error {
	article, err := h.articleRepository.GetArticleByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Article not found")
	}
	if !article.IsPublished {
		if _, err := h.requireAdmin(c); err != nil {
			return echo.NewHTTPError(http.StatusNotFound, "Article not found")
		}
	}
	return c.JSON(http.StatusOK, article)
}

// CreateArticle creates a curated article; ADMIN only
func (h *ArticleHandler) CreateArticle(c echo.Context) error {
	admin, err := h.requireAdmin(c)
	if err != nil {
		return httpError(err)
	}

	var req models.CreateArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if textOnly(req.Content) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Content is required")
	}

	published := true
	if req.IsPublished != nil {
		published = *req.IsPublished
	}

	article := &models.Article{
		Kind:        h.kind,
		Title:       strings.TrimSpace(req.Title),
		Summary:     strings.TrimSpace(req.Summary),
		Content:     req.Content,
		Category:    strings.TrimSpace(req.Category),
		Section:     strings.TrimSpace(req.Section),
		CoverImage:  req.CoverImage,
		Order:       req.Order,
		IsPublished: published,
		AuthorID:    admin.ID,
	}
	if h.kind == models.ArticleClub && article.Section == "" {
		article.Section = "General"
	}

	if err := h.articleRepository.CreateArticle(c.Request().Context(), article); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, article)
}

// UpdateArticle edits a curated article; ADMIN only
func (h *ArticleHandler) UpdateArticle(c echo.Context) error {
	if _, err := h.requireAdmin(c); err != nil {
		return httpError(err)
	}

	article, err := h.articleRepository.GetArticleByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Article not found")
	}

	var req models.UpdateArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if req.Title != "" {
		article.Title = strings.TrimSpace(req.Title)
	}
	if req.Summary != "" {
		article.Summary = strings.TrimSpace(req.Summary)
	}
	if req.Content != "" {
		if textOnly(req.Content) == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "Content is required")
		}
		article.Content = req.Content
	}
	if req.Category != "" {
		article.Category = strings.TrimSpace(req.Category)
	}
	if req.Section != "" {
		article.Section = strings.TrimSpace(req.Section)
	}
	if req.CoverImage != "" {
		article.CoverImage = req.CoverImage
	}
	if req.Order != nil {
		article.Order = *req.Order
	}
	if req.IsPublished != nil {
		article.IsPublished = *req.IsPublished
	}

	if err := h.articleRepository.UpdateArticle(c.Request().Context(), c.Param("id"), article); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Article not found")
	}
	return c.JSON(http.StatusOK, article)
}

// DeleteArticle removes a curated article; ADMIN only
func (h *ArticleHandler) DeleteArticle(c echo.Context) error {
	if _, err := h.requireAdmin(c); err != nil {
		return httpError(err)
	}
	if err := h.articleRepository.DeleteArticle(c.Request().Context(), c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Article not found")
	}
	return c.NoContent(http.StatusNoContent)
}

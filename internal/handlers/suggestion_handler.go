package handlers

import (
	"net/http"
	"strings"

	"github.com/jaehyo-dev/school-hub/backend/internal/models"
	"github.com/jaehyo-dev/school-hub/backend/internal/policy"
	"github.com/jaehyo-dev/school-hub/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// SuggestionHandler handles HTTP requests for suggestions
type SuggestionHandler struct {
	suggestionRepository repositories.SuggestionRepository
	resolver             *policy.Resolver
}

// NewSuggestionHandler creates a new SuggestionHandler
func NewSuggestionHandler(suggestionRepo repositories.SuggestionRepository, resolver *policy.Resolver) *SuggestionHandler {
	return &SuggestionHandler{suggestionRepository: suggestionRepo, resolver: resolver}
}

// RegisterSuggestionRoutes registers suggestion routes
func (h *SuggestionHandler) RegisterSuggestionRoutes(g *echo.Group) {
	g.POST("/suggestions", h.CreateSuggestion)
	g.GET("/suggestions", h.ListSuggestions)
}

// CreateSuggestion submits a suggestion from any authenticated user
func (h *SuggestionHandler) CreateSuggestion(c echo.Context) error {
	claims := claimsFrom(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	var req models.CreateSuggestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	authorID := claims.UserID
	suggestion := &models.Suggestion{
		Name:     strings.TrimSpace(req.Name),
		Title:    strings.TrimSpace(req.Title),
		Content:  strings.TrimSpace(req.Content),
		AuthorID: &authorID,
	}
	if err := h.suggestionRepository.CreateSuggestion(suggestion); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, suggestion)
}

// ListSuggestions returns all suggestions; reading them is admin-only
func (h *SuggestionHandler) ListSuggestions(c echo.Context) error {
	claims := claimsFrom(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}
	if _, err := h.resolver.RequireAdmin(claims.FirebaseUID); err != nil {
		return httpError(err)
	}

	suggestions, err := h.suggestionRepository.GetSuggestions()
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, suggestions)
}

package handlers

import (
	"net/http"
	"strings"

	"github.com/jaehyo-dev/school-hub/backend/internal/models"
	"github.com/jaehyo-dev/school-hub/backend/internal/policy"
	"github.com/jaehyo-dev/school-hub/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// AdminHandler handles the moderation and curation console endpoints.
// Every route requires the ADMIN role, checked before anything is touched.
type AdminHandler struct {
	userRepository       repositories.UserRepository
	reportRepository     repositories.ReportRepository
	suggestionRepository repositories.SuggestionRepository
	resolver             *policy.Resolver
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(userRepo repositories.UserRepository, reportRepo repositories.ReportRepository, suggestionRepo repositories.SuggestionRepository, resolver *policy.Resolver) *AdminHandler {
	return &AdminHandler{
		userRepository:       userRepo,
		reportRepository:     reportRepo,
		suggestionRepository: suggestionRepo,
		resolver:             resolver,
	}
}

// RegisterAdminRoutes registers the admin console routes
func (h *AdminHandler) RegisterAdminRoutes(g *echo.Group) {
	g.GET("/admin/users", h.ListUsers)
	g.PATCH("/admin/users", h.UpdateUserRole)
	g.GET("/admin/reports", h.ListReports)
	g.GET("/admin/reports/:id", h.GetReport)
	g.POST("/admin/reports/:id/action", h.ApplyReportAction)
	g.GET("/admin/suggestions", h.ListSuggestions)
}

func (h *AdminHandler) requireAdmin(c echo.Context) (*models.User, error) {
	claims := claimsFrom(c)
	if claims == nil {
		return nil, policy.ErrUnauthorized
	}
	return h.resolver.RequireAdmin(claims.FirebaseUID)
}

// ListUsers returns every synced user, newest first
func (h *AdminHandler) ListUsers(c echo.Context) error {
	if _, err := h.requireAdmin(c); err != nil {
		return httpError(err)
	}
	users, err := h.userRepository.GetUsers()
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateUserRole changes a user's role by explicit admin action
func (h *AdminHandler) UpdateUserRole(c echo.Context) error {
	if _, err := h.requireAdmin(c); err != nil {
		return httpError(err)
	}

	var req models.UpdateUserRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role := models.Role(strings.ToUpper(req.Role))
	if !role.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid role value")
	}

	user, err := h.userRepository.UpdateUserRole(req.UserID, role)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// ListReports returns reports for the moderation queue, optionally filtered
// by status
func (h *AdminHandler) ListReports(c echo.Context) error {
	if _, err := h.requireAdmin(c); err != nil {
		return httpError(err)
	}

	status := models.ReportStatus(strings.ToUpper(c.QueryParam("status")))
	reports, err := h.reportRepository.ListReports(status)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, reports)
}

// GetReport returns one report together with its action history
func (h *AdminHandler) GetReport(c echo.Context) error {
	if _, err := h.requireAdmin(c); err != nil {
		return httpError(err)
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid report ID")
	}

	report, err := h.reportRepository.GetReportByID(id)
	if err != nil {
		return httpError(err)
	}
	actions, err := h.reportRepository.GetReportActions(id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"report":  report,
		"actions": actions,
	})
}

// ApplyReportAction executes a moderation action against a report
func (h *AdminHandler) ApplyReportAction(c echo.Context) error {
	admin, err := h.requireAdmin(c)
	if err != nil {
		return httpError(err)
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid report ID")
	}

	var req models.ApplyActionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actionType := models.ActionType(strings.ToUpper(req.ActionType))
	report, action, err := h.reportRepository.ApplyAction(id, admin.ID, actionType, strings.TrimSpace(req.Description))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"report": report,
		"action": action,
	})
}

// ListSuggestions returns every submitted suggestion, newest first
func (h *AdminHandler) ListSuggestions(c echo.Context) error {
	if _, err := h.requireAdmin(c); err != nil {
		return httpError(err)
	}
	suggestions, err := h.suggestionRepository.GetSuggestions()
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, suggestions)
}

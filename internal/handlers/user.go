package handlers

import (
	"net/http"

	"github.com/jaehyo-dev/school-hub/backend/internal/models"
	"github.com/jaehyo-dev/school-hub/backend/internal/policy"
	"github.com/jaehyo-dev/school-hub/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// UserHandler handles HTTP requests related to the current user
type UserHandler struct {
	userRepository repositories.UserRepository
	resolver       *policy.Resolver
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, resolver *policy.Resolver) *UserHandler {
	return &UserHandler{userRepository: userRepo, resolver: resolver}
}

// RegisterProfileRoutes registers current-user routes
func (h *UserHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/users/me", h.GetMe)
	g.PUT("/users/me", h.UpdateMe)
}

// GetMe returns the caller's identity, role and school-email status
func (h *UserHandler) GetMe(c echo.Context) error {
	claims := claimsFrom(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	user, err := h.userRepository.GetUserByID(claims.UserID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"user":             user,
		"role":             user.Role,
		"has_school_email": h.resolver.IsSchoolEmail(user.Email),
	})
}

// UpdateMe updates the caller's display name and nickname
func (h *UserHandler) UpdateMe(c echo.Context) error {
	claims := claimsFrom(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	var req models.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userRepository.GetUserByID(claims.UserID)
	if err != nil {
		return httpError(err)
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Nickname != "" {
		user.Nickname = req.Nickname
	}

	if err := h.userRepository.UpdateUser(user); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jaehyo-dev/school-hub/backend/internal/models"
	"github.com/jaehyo-dev/school-hub/backend/internal/policy"
	"github.com/jaehyo-dev/school-hub/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// TeacherHandler handles HTTP requests for the teacher directory
type TeacherHandler struct {
	teacherRepository repositories.TeacherRepository
	userRepository    repositories.UserRepository
	resolver          *policy.Resolver
}

// NewTeacherHandler creates a new TeacherHandler
func NewTeacherHandler(teacherRepo repositories.TeacherRepository, userRepo repositories.UserRepository, resolver *policy.Resolver) *TeacherHandler {
	return &TeacherHandler{
		teacherRepository: teacherRepo,
		userRepository:    userRepo,
		resolver:          resolver,
	}
}

// RegisterPublicRoutes registers the directory routes readable by anyone
func (h *TeacherHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/teachers", h.ListTeachers)
	g.GET("/teachers/:id", h.GetTeacher)
}

// RegisterTeacherRoutes registers the authenticated directory routes
func (h *TeacherHandler) RegisterTeacherRoutes(g *echo.Group) {
	g.POST("/teachers", h.CreateTeacher)
	g.PUT("/teachers/:id", h.UpdateTeacher)
	g.DELETE("/teachers/:id", h.DeleteTeacher)
}

// ListTeachers returns active teacher profiles sorted by name
func (h *TeacherHandler) ListTeachers(c echo.Context) error {
	teachers, err := h.teacherRepository.GetActiveTeachers()
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, teachers)
}

// GetTeacher returns one teacher profile
func (h *TeacherHandler) GetTeacher(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid teacher ID")
	}
	teacher, err := h.teacherRepository.GetTeacherByID(id)
	if err != nil {
		return httpError(err)
	}
	if !teacher.IsActive {
		return echo.NewHTTPError(http.StatusNotFound, "Not found")
	}
	return c.JSON(http.StatusOK, teacher)
}

// CreateTeacher creates a directory profile; ADMIN and STAFF only
func (h *TeacherHandler) CreateTeacher(c echo.Context) error {
	claims := claimsFrom(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}
	if _, err := h.resolver.RequireAnyRole(claims.FirebaseUID, models.RoleAdmin, models.RoleStaff); err != nil {
		return httpError(err)
	}

	var req models.CreateTeacherRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.userRepository.GetUserByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return httpError(err)
	}
	if _, err := h.teacherRepository.GetTeacherByUserID(req.UserID); err == nil {
		return echo.NewHTTPError(http.StatusConflict, "A profile already exists for this user")
	}

	teacher := &models.TeacherProfile{
		UserID:       req.UserID,
		Name:         strings.TrimSpace(req.Name),
		Subject:      strings.TrimSpace(req.Subject),
		Email:        req.Email,
		Bio:          req.Bio,
		ProfileImage: req.ProfileImage,
		IsActive:     true,
	}
	if err := h.teacherRepository.CreateTeacher(teacher); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, teacher)
}

// UpdateTeacher edits a profile; ADMIN, STAFF, or the profile's own user
func (h *TeacherHandler) UpdateTeacher(c echo.Context) error {
	claims := claimsFrom(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid teacher ID")
	}

	teacher, err := h.teacherRepository.GetTeacherByID(id)
	if err != nil {
		return httpError(err)
	}

	if teacher.UserID != claims.UserID {
		if _, err := h.resolver.RequireAnyRole(claims.FirebaseUID, models.RoleAdmin, models.RoleStaff); err != nil {
			return httpError(err)
		}
	}

	var req models.UpdateTeacherRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if req.Name != "" {
		teacher.Name = strings.TrimSpace(req.Name)
	}
	if req.Subject != "" {
		teacher.Subject = strings.TrimSpace(req.Subject)
	}
	if req.Email != "" {
		teacher.Email = req.Email
	}
	if req.Bio != "" {
		teacher.Bio = req.Bio
	}
	if req.ProfileImage != "" {
		teacher.ProfileImage = req.ProfileImage
	}
	if req.IsActive != nil {
		teacher.IsActive = *req.IsActive
	}

	if err := h.teacherRepository.UpdateTeacher(teacher); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, teacher)
}

// DeleteTeacher deactivates a profile; ADMIN only
func (h *TeacherHandler) DeleteTeacher(c echo.Context) error {
	claims := claimsFrom(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}
	if _, err := h.resolver.RequireAdmin(claims.FirebaseUID); err != nil {
		return httpError(err)
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid teacher ID")
	}
	if err := h.teacherRepository.DeactivateTeacher(id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

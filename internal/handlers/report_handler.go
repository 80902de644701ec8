package handlers

import (
	"net/http"
	"strings"

	"github.com/jaehyo-dev/school-hub/backend/internal/models"
	"github.com/jaehyo-dev/school-hub/backend/internal/policy"
	"github.com/jaehyo-dev/school-hub/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// ReportHandler handles HTTP requests for user reports
type ReportHandler struct {
	reportRepository repositories.ReportRepository
	resolver         *policy.Resolver
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportRepo repositories.ReportRepository, resolver *policy.Resolver) *ReportHandler {
	return &ReportHandler{reportRepository: reportRepo, resolver: resolver}
}

// RegisterReportRoutes registers report submission routes
func (h *ReportHandler) RegisterReportRoutes(g *echo.Group) {
	g.POST("/reports", h.SubmitReport)
}

// SubmitReport files a report against a post or comment. A repeat report by
// the same reporter against the same still-PENDING target merges into the
// existing row (200); otherwise a new report is created (201).
func (h *ReportHandler) SubmitReport(c echo.Context) error {
	claims := claimsFrom(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	var req models.CreateReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := policy.ValidateReportTarget(req.PostID, req.CommentID, req.Reason); err != nil {
		return httpError(err)
	}

	report := &models.Report{
		ReporterID: claims.UserID,
		PostID:     req.PostID,
		CommentID:  req.CommentID,
		Reason:     strings.TrimSpace(req.Reason),
	}

	created, err := h.reportRepository.CreateOrMerge(report)
	if err != nil {
		return httpError(err)
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.JSON(status, report)
}

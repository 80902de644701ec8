package handlers

import (
	"net/http"
	"testing"

	"github.com/jaehyo-dev/school-hub/backend/internal/models"
	"github.com/jaehyo-dev/school-hub/backend/internal/policy"
	"github.com/jaehyo-dev/school-hub/backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReportHandler(db *gorm.DB) *ReportHandler {
	userRepo := repositories.NewPostgresUserRepository(db)
	resolver := policy.NewResolver(userRepo, nil)
	return NewReportHandler(repositories.NewPostgresReportRepository(db), resolver)
}

func TestSubmitReportCreateThenMerge(t *testing.T) {
	db := setupTestDB(t)
	h := newReportHandler(db)
	e := newTestEcho()

	author := seedUser(t, db, "author", models.RoleStudent)
	reporter := seedUser(t, db, "reporter", models.RoleStudent)
	seedPost(t, db, author.ID, models.CategoryFree)

	body := `{"post_id":1,"reason":"spam"}`
	c, rec := newTestContext(e, http.MethodPost, "/api/v1/reports", body, reporter)
	require.NoError(t, h.SubmitReport(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	// Re-reporting the same pending target answers 200 with the merged row.
	body = `{"post_id":1,"reason":"really spam"}`
	c, rec = newTestContext(e, http.MethodPost, "/api/v1/reports", body, reporter)
	require.NoError(t, h.SubmitReport(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var merged models.Report
	decodeBody(t, rec, &merged)
	assert.Equal(t, 2, merged.ReportCount)
	assert.Equal(t, "really spam", merged.Reason)
}

func TestSubmitReportValidation(t *testing.T) {
	db := setupTestDB(t)
	h := newReportHandler(db)
	e := newTestEcho()

	reporter := seedUser(t, db, "reporter", models.RoleStudent)

	// No target at all.
	c, _ := newTestContext(e, http.MethodPost, "/api/v1/reports", `{"reason":"spam"}`, reporter)
	assert.Equal(t, http.StatusBadRequest, httpStatus(h.SubmitReport(c)))

	// Both targets at once.
	c, _ = newTestContext(e, http.MethodPost, "/api/v1/reports", `{"post_id":1,"comment_id":2,"reason":"spam"}`, reporter)
	assert.Equal(t, http.StatusBadRequest, httpStatus(h.SubmitReport(c)))

	// Missing reason.
	c, _ = newTestContext(e, http.MethodPost, "/api/v1/reports", `{"post_id":1,"reason":"  "}`, reporter)
	assert.Equal(t, http.StatusBadRequest, httpStatus(h.SubmitReport(c)))

	// No identity.
	c, _ = newTestContext(e, http.MethodPost, "/api/v1/reports", `{"post_id":1,"reason":"spam"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, httpStatus(h.SubmitReport(c)))
}

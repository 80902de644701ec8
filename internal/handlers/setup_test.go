package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jaehyo-dev/school-hub/backend/internal/models"
	"github.com/jaehyo-dev/school-hub/backend/internal/policy"
	"github.com/jaehyo-dev/school-hub/backend/internal/repositories"
	"github.com/jaehyo-dev/school-hub/backend/validators"
	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Report{},
		&models.AdminAction{},
		&models.TeacherProfile{},
		&models.Suggestion{},
	); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return db
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validators.NewValidator()
	return e
}

// newTestContext builds an echo context for a request. A non-nil user is
// attached the way the JWT middleware would.
func newTestContext(e *echo.Echo, method, target, body string, user *models.User) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set("user", &models.JwtCustomClaims{
			UserID:      user.ID,
			FirebaseUID: user.FirebaseUID,
			Email:       user.Email,
		})
	}
	return c, rec
}

func seedUser(t *testing.T, db *gorm.DB, uid string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{
		Name:        "User " + uid,
		Nickname:    "nick-" + uid,
		Email:       uid + "@example.com",
		FirebaseUID: uid,
		Role:        role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedPost(t *testing.T, db *gorm.DB, authorID uint, category models.PostCategory) *models.Post {
	t.Helper()
	post := &models.Post{
		Title:          "title",
		Content:        "<p>content</p>",
		Category:       category,
		AuthorID:       authorID,
		VisibilityName: models.VisibilityNickname,
	}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("seed post: %v", err)
	}
	return post
}

func newPostHandler(db *gorm.DB) *PostHandler {
	userRepo := repositories.NewPostgresUserRepository(db)
	resolver := policy.NewResolver(userRepo, nil)
	return NewPostHandler(
		repositories.NewPostgresPostRepository(db),
		repositories.NewPostgresCommentRepository(db),
		resolver,
	)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dest); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func httpStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	return http.StatusInternalServerError
}

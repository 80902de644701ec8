package repositories

import (
	"testing"

	"github.com/jaehyo-dev/school-hub/backend/internal/models"
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

func seedUser(t *testing.T, db *gorm.DB, uid string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{
		Name:        "User " + uid,
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

func seedComment(t *testing.T, db *gorm.DB, postID, authorID uint) *models.Comment {
	t.Helper()
	comment := &models.Comment{
		PostID:         postID,
		AuthorID:       authorID,
		Content:        "a comment",
		VisibilityName: models.VisibilityNickname,
	}
	if err := db.Create(comment).Error; err != nil {
		t.Fatalf("seed comment: %v", err)
	}
	return comment
}

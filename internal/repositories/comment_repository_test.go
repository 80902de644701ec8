package repositories

import (
	"testing"

	"github.com/jaehyo-dev/school-hub/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCommentBumpsPostCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresCommentRepository(db)

	author := seedUser(t, db, "author", models.RoleStudent)
	post := seedPost(t, db, author.ID, models.CategoryFree)

	for i := 0; i < 3; i++ {
		err := repo.CreateComment(&models.Comment{
			PostID:         post.ID,
			AuthorID:       author.ID,
			Content:        "hello",
			VisibilityName: models.VisibilityNickname,
		})
		require.NoError(t, err)
	}

	var got models.Post
	require.NoError(t, db.First(&got, post.ID).Error)
	assert.Equal(t, 3, got.CommentCount)
}

func TestSoftDeleteCommentDecrementsOnce(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresCommentRepository(db)

	author := seedUser(t, db, "author", models.RoleStudent)
	post := seedPost(t, db, author.ID, models.CategoryFree)

	comment := &models.Comment{PostID: post.ID, AuthorID: author.ID, Content: "bye", VisibilityName: models.VisibilityNickname}
	require.NoError(t, repo.CreateComment(comment))

	require.NoError(t, repo.SoftDeleteComment(comment.ID))

	// Deleting again is a no-op; the count must not go negative.
	require.NoError(t, repo.SoftDeleteComment(comment.ID))

	var got models.Post
	require.NoError(t, db.First(&got, post.ID).Error)
	assert.Equal(t, 0, got.CommentCount)

	var deleted models.Comment
	require.NoError(t, db.First(&deleted, comment.ID).Error)
	assert.True(t, deleted.IsDeleted)
}

func TestGetCommentsByPostIDFiltersFlags(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresCommentRepository(db)

	author := seedUser(t, db, "author", models.RoleStudent)
	post := seedPost(t, db, author.ID, models.CategoryFree)

	visible := &models.Comment{PostID: post.ID, AuthorID: author.ID, Content: "first", VisibilityName: models.VisibilityNickname}
	require.NoError(t, repo.CreateComment(visible))

	removed := &models.Comment{PostID: post.ID, AuthorID: author.ID, Content: "second", VisibilityName: models.VisibilityNickname}
	require.NoError(t, repo.CreateComment(removed))
	require.NoError(t, repo.SoftDeleteComment(removed.ID))

	hidden := &models.Comment{PostID: post.ID, AuthorID: author.ID, Content: "third", VisibilityName: models.VisibilityNickname, IsHidden: true}
	require.NoError(t, repo.CreateComment(hidden))

	comments, err := repo.GetCommentsByPostID(post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "first", comments[0].Content)
	assert.Equal(t, author.ID, comments[0].Author.ID)
}

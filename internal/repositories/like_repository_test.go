package repositories

import (
	"testing"

	"github.com/jaehyo-dev/school-hub/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleLike(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresLikeRepository(db)

	author := seedUser(t, db, "author", models.RoleStudent)
	liker := seedUser(t, db, "liker", models.RoleStudent)
	post := seedPost(t, db, author.ID, models.CategoryFree)

	liked, err := repo.ToggleLike(post.ID, liker.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	var got models.Post
	require.NoError(t, db.First(&got, post.ID).Error)
	assert.Equal(t, 1, got.LikeCount)

	has, err := repo.HasUserLikedPost(post.ID, liker.ID)
	require.NoError(t, err)
	assert.True(t, has)

	// Toggling again removes the like and the count returns to zero.
	liked, err = repo.ToggleLike(post.ID, liker.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	require.NoError(t, db.First(&got, post.ID).Error)
	assert.Equal(t, 0, got.LikeCount)

	has, err = repo.HasUserLikedPost(post.ID, liker.ID)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestToggleLikeTwoUsers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresLikeRepository(db)

	author := seedUser(t, db, "author", models.RoleStudent)
	a := seedUser(t, db, "a", models.RoleStudent)
	b := seedUser(t, db, "b", models.RoleParent)
	post := seedPost(t, db, author.ID, models.CategoryFree)

	_, err := repo.ToggleLike(post.ID, a.ID)
	require.NoError(t, err)
	_, err = repo.ToggleLike(post.ID, b.ID)
	require.NoError(t, err)

	var got models.Post
	require.NoError(t, db.First(&got, post.ID).Error)
	assert.Equal(t, 2, got.LikeCount)

	// One user unliking leaves the other's like intact.
	_, err = repo.ToggleLike(post.ID, a.ID)
	require.NoError(t, err)

	require.NoError(t, db.First(&got, post.ID).Error)
	assert.Equal(t, 1, got.LikeCount)

	has, err := repo.HasUserLikedPost(post.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestToggleLikeCountNeverNegative(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresLikeRepository(db)

	author := seedUser(t, db, "author", models.RoleStudent)
	liker := seedUser(t, db, "liker", models.RoleStudent)
	post := seedPost(t, db, author.ID, models.CategoryFree)

	// A stray like row without a matching counter increment must not push
	// the count below zero on removal.
	require.NoError(t, db.Create(&models.Like{PostID: post.ID, UserID: liker.ID}).Error)

	liked, err := repo.ToggleLike(post.ID, liker.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	var got models.Post
	require.NoError(t, db.First(&got, post.ID).Error)
	assert.Equal(t, 0, got.LikeCount)
}

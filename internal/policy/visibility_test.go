package policy

import (
	"testing"

	"github.com/jaehyo-dev/school-hub/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestPostDisplayNameQnARedaction(t *testing.T) {
	author := &models.User{Model: gorm.Model{ID: 7}, Name: "Jae Kim", Nickname: "jae"}
	post := &models.Post{
		Category:       models.CategoryQnA,
		AuthorID:       7,
		VisibilityName: models.VisibilityNickname,
	}

	// Everyone except the author and admins sees Anonymous, even in
	// nickname mode.
	assert.Equal(t, AnonymousName, PostDisplayName(post, author, Viewer{}))
	assert.Equal(t, AnonymousName, PostDisplayName(post, author, Viewer{UserID: 8, Role: models.RoleStudent}))

	assert.Equal(t, "jae", PostDisplayName(post, author, Viewer{UserID: 7, Role: models.RoleStudent}))
	assert.Equal(t, "jae", PostDisplayName(post, author, Viewer{UserID: 99, Role: models.RoleAdmin}))
}

func TestPostDisplayNameFallbackChain(t *testing.T) {
	post := &models.Post{Category: models.CategoryFree, AuthorID: 1, VisibilityName: models.VisibilityNickname}
	viewer := Viewer{UserID: 2, Role: models.RoleStudent}

	withNickname := &models.User{Model: gorm.Model{ID: 1}, Name: "Jae Kim", Nickname: "jae"}
	assert.Equal(t, "jae", PostDisplayName(post, withNickname, viewer))

	nameOnly := &models.User{Model: gorm.Model{ID: 1}, Name: "Jae Kim"}
	assert.Equal(t, "Jae Kim", PostDisplayName(post, nameOnly, viewer))

	empty := &models.User{Model: gorm.Model{ID: 1}}
	assert.Equal(t, AnonymousName, PostDisplayName(post, empty, viewer))

	assert.Equal(t, AnonymousName, PostDisplayName(post, nil, viewer))
}

func TestPostDisplayNameAnonymousMode(t *testing.T) {
	author := &models.User{Model: gorm.Model{ID: 1}, Name: "Jae Kim", Nickname: "jae"}
	post := &models.Post{Category: models.CategoryFree, AuthorID: 1, VisibilityName: models.VisibilityAnonymous}

	// Anonymous mode hides the author from everyone, admins included.
	assert.Equal(t, AnonymousName, PostDisplayName(post, author, Viewer{UserID: 99, Role: models.RoleAdmin}))
	assert.Equal(t, AnonymousName, PostDisplayName(post, author, Viewer{UserID: 1, Role: models.RoleStudent}))
}

func TestCommentDisplayName(t *testing.T) {
	author := &models.User{Model: gorm.Model{ID: 3}, Nickname: "mina"}

	named := &models.Comment{AuthorID: 3, VisibilityName: models.VisibilityNickname}
	assert.Equal(t, "mina", CommentDisplayName(named, author))

	anon := &models.Comment{AuthorID: 3, VisibilityName: models.VisibilityAnonymous}
	assert.Equal(t, AnonymousName, CommentDisplayName(anon, author))
}

func TestCanViewPost(t *testing.T) {
	free := &models.Post{Category: models.CategoryFree, AuthorID: 1}
	assert.NoError(t, CanViewPost(free, Viewer{}))

	qna := &models.Post{Category: models.CategoryQnA, AuthorID: 1}
	assert.ErrorIs(t, CanViewPost(qna, Viewer{}), ErrForbidden)
	assert.ErrorIs(t, CanViewPost(qna, Viewer{UserID: 2, Role: models.RoleStudent}), ErrForbidden)
	assert.NoError(t, CanViewPost(qna, Viewer{UserID: 1, Role: models.RoleStudent}))
	assert.NoError(t, CanViewPost(qna, Viewer{UserID: 2, Role: models.RoleAdmin}))
}

func TestCanEditPost(t *testing.T) {
	post := &models.Post{AuthorID: 1}

	assert.ErrorIs(t, CanEditPost(post, Viewer{}), ErrUnauthorized)
	assert.NoError(t, CanEditPost(post, Viewer{UserID: 1}))

	// Admins may delete but not edit someone else's post.
	assert.ErrorIs(t, CanEditPost(post, Viewer{UserID: 2, Role: models.RoleAdmin}), ErrForbidden)
}

func TestCanDeletePostAndComment(t *testing.T) {
	post := &models.Post{AuthorID: 1}
	assert.ErrorIs(t, CanDeletePost(post, Viewer{}), ErrUnauthorized)
	assert.NoError(t, CanDeletePost(post, Viewer{UserID: 1}))
	assert.NoError(t, CanDeletePost(post, Viewer{UserID: 2, Role: models.RoleAdmin}))
	assert.ErrorIs(t, CanDeletePost(post, Viewer{UserID: 2, Role: models.RoleStudent}), ErrForbidden)

	comment := &models.Comment{AuthorID: 5}
	assert.NoError(t, CanDeleteComment(comment, Viewer{UserID: 5}))
	assert.NoError(t, CanDeleteComment(comment, Viewer{UserID: 9, Role: models.RoleAdmin}))
	assert.ErrorIs(t, CanDeleteComment(comment, Viewer{UserID: 9, Role: models.RoleParent}), ErrForbidden)
}

func TestGeneralFeedExclusions(t *testing.T) {
	excluded := GeneralFeedExclusions()
	assert.Contains(t, excluded, models.CategoryQnA)
	assert.Contains(t, excluded, models.CategoryClub)
	assert.Len(t, excluded, 2)
}

package policy

import (
	"fmt"

	"github.com/jaehyo-dev/school-hub/backend/internal/models"
)

// AnonymousName is shown whenever the author's identity is withheld.
const AnonymousName = "Anonymous"

// Viewer identifies who is looking at content. A zero UserID means the
// request carried no identity.
type Viewer struct {
	UserID uint
	Role   models.Role
}

// Authenticated reports whether the viewer carried an identity.
func (v Viewer) Authenticated() bool {
	return v.UserID != 0
}

// IsAdmin reports whether the viewer holds the ADMIN role.
func (v Viewer) IsAdmin() bool {
	return v.Role == models.RoleAdmin
}

// PostDisplayName resolves the author name disclosed to the viewer for one
// post row. Anonymous posts never disclose. QNA authorship is disclosed only
// to the author and ADMIN, even when the post's mode is nickname.
func PostDisplayName(post *models.Post, author *models.User, viewer Viewer) string {
	if post.Category == models.CategoryQnA {
		if !viewer.IsAdmin() && post.AuthorID != viewer.UserID {
			return AnonymousName
		}
	}
	return displayName(post.VisibilityName, author)
}

// CommentDisplayName resolves the author name disclosed for one comment.
func CommentDisplayName(comment *models.Comment, author *models.User) string {
	return displayName(comment.VisibilityName, author)
}

func displayName(visibilityName string, author *models.User) string {
	if visibilityName == models.VisibilityAnonymous || author == nil {
		return AnonymousName
	}
	if author.Nickname != "" {
		return author.Nickname
	}
	if author.Name != "" {
		return author.Name
	}
	return AnonymousName
}

// CanViewPost gates direct detail fetches. QNA posts are visible only to
// their author and ADMIN; everything else follows the soft-delete flags,
// which callers are expected to have filtered already.
func CanViewPost(post *models.Post, viewer Viewer) error {
	if post.Category != models.CategoryQnA {
		return nil
	}
	if !viewer.Authenticated() {
		return fmt.Errorf("%w: sign in to view this question", ErrForbidden)
	}
	if post.AuthorID == viewer.UserID || viewer.IsAdmin() {
		return nil
	}
	return fmt.Errorf("%w: only the author and admins can view this question", ErrForbidden)
}

// CanEditPost allows only the original author to edit.
func CanEditPost(post *models.Post, viewer Viewer) error {
	if !viewer.Authenticated() {
		return ErrUnauthorized
	}
	if post.AuthorID != viewer.UserID {
		return fmt.Errorf("%w: only the author can edit this post", ErrForbidden)
	}
	return nil
}

// CanDeletePost allows the original author or an ADMIN to soft-delete.
func CanDeletePost(post *models.Post, viewer Viewer) error {
	if !viewer.Authenticated() {
		return ErrUnauthorized
	}
	if post.AuthorID == viewer.UserID || viewer.IsAdmin() {
		return nil
	}
	return fmt.Errorf("%w: only the author or an admin can delete this post", ErrForbidden)
}

// CanDeleteComment allows the original author or an ADMIN to soft-delete.
func CanDeleteComment(comment *models.Comment, viewer Viewer) error {
	if !viewer.Authenticated() {
		return ErrUnauthorized
	}
	if comment.AuthorID == viewer.UserID || viewer.IsAdmin() {
		return nil
	}
	return fmt.Errorf("%w: only the author or an admin can delete this comment", ErrForbidden)
}

// GeneralFeedExclusions are the categories the mixed community feed and the
// hot feed never include, regardless of viewer.
func GeneralFeedExclusions() []models.PostCategory {
	return []models.PostCategory{models.CategoryQnA, models.CategoryClub}
}

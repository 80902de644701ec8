package handlers

import (
	"net/http"

	"github.com/jaehyo-dev/school-hub/backend/internal/models"
	"github.com/jaehyo-dev/school-hub/backend/internal/policy"
	"github.com/jaehyo-dev/school-hub/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	postRepository    repositories.PostRepository
	resolver          *policy.Resolver
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository, resolver *policy.Resolver) *CommentHandler {
	return &CommentHandler{
		commentRepository: commentRepo,
		postRepository:    postRepo,
		resolver:          resolver,
	}
}

// RegisterPublicRoutes registers the comment routes readable without an identity
func (h *CommentHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/posts/:id/comments", h.GetComments)
}

// RegisterCommentRoutes registers the authenticated comment routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:id/comments", h.CreateComment)
	g.DELETE("/comments/:id", h.DeleteComment)
}

// GetComments retrieves the visible comments of a post, oldest first
func (h *CommentHandler) GetComments(c echo.Context) error {
	postID, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}
	viewer := viewerFrom(c, h.resolver)

	post, err := h.postRepository.GetPostByID(postID)
	if err != nil {
		return httpError(err)
	}
	if err := policy.CanViewPost(post, viewer); err != nil {
		return httpError(err)
	}
	if post.IsDeleted || post.IsHidden {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	comments, err := h.commentRepository.GetCommentsByPostID(postID)
	if err != nil {
		return httpError(err)
	}

	views := make([]models.CommentView, 0, len(comments))
	for i := range comments {
		views = append(views, models.CommentView{
			Comment:     comments[i],
			DisplayName: policy.CommentDisplayName(&comments[i], &comments[i].Author),
		})
	}
	return c.JSON(http.StatusOK, views)
}

// CreateComment adds a comment to a post and bumps its comment count
func (h *CommentHandler) CreateComment(c echo.Context) error {
	claims := claimsFrom(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}
	if _, err := h.resolver.RequireStudentAccess(claims.FirebaseUID, claims.Email); err != nil {
		return httpError(err)
	}
	postID, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.postRepository.GetPostByID(postID)
	if err != nil {
		return httpError(err)
	}
	if err := policy.CanViewPost(post, viewerFrom(c, h.resolver)); err != nil {
		return httpError(err)
	}
	if post.IsDeleted || post.IsHidden {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	visibility := req.VisibilityName
	if visibility == "" {
		visibility = models.VisibilityNickname
	}

	comment := &models.Comment{
		PostID:         postID,
		AuthorID:       claims.UserID,
		Content:        req.Content,
		VisibilityName: visibility,
	}
	if err := h.commentRepository.CreateComment(comment); err != nil {
		return httpError(err)
	}

	created, err := h.commentRepository.GetCommentByID(comment.ID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, models.CommentView{
		Comment:     *created,
		DisplayName: policy.CommentDisplayName(created, &created.Author),
	})
}

// DeleteComment soft-deletes a comment on behalf of its author or an admin,
// decrementing the parent post's comment count
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}
	viewer := viewerFrom(c, h.resolver)

	comment, err := h.commentRepository.GetCommentByID(id)
	if err != nil {
		return httpError(err)
	}
	if comment.IsDeleted {
		return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
	}
	if err := policy.CanDeleteComment(comment, viewer); err != nil {
		return httpError(err)
	}

	if err := h.commentRepository.SoftDeleteComment(id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

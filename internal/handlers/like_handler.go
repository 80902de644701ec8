package handlers

import (
	"net/http"

	"github.com/jaehyo-dev/school-hub/backend/internal/policy"
	"github.com/jaehyo-dev/school-hub/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles HTTP requests related to post likes
type LikeHandler struct {
	likeRepository repositories.LikeRepository
	postRepository repositories.PostRepository
	resolver       *policy.Resolver
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository, postRepo repositories.PostRepository, resolver *policy.Resolver) *LikeHandler {
	return &LikeHandler{
		likeRepository: likeRepo,
		postRepository: postRepo,
		resolver:       resolver,
	}
}

// RegisterPublicRoutes registers the like routes readable without an identity
func (h *LikeHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/posts/:id/like", h.GetLikeStatus)
}

// RegisterLikeRoutes registers the authenticated like routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:id/like", h.ToggleLike)
}

// ToggleLike flips the caller's like on a post
func (h *LikeHandler) ToggleLike(c echo.Context) error {
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

	post, err := h.postRepository.GetPostByID(postID)
	if err != nil {
		return httpError(err)
	}
	if post.IsDeleted || post.IsHidden {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	liked, err := h.likeRepository.ToggleLike(postID, claims.UserID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"liked": liked})
}

// GetLikeStatus reports whether the caller has liked a post. Anonymous
// viewers get liked=false, not an error.
func (h *LikeHandler) GetLikeStatus(c echo.Context) error {
	postID, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	claims := claimsFrom(c)
	if claims == nil {
		return c.JSON(http.StatusOK, echo.Map{"liked": false})
	}

	liked, err := h.likeRepository.HasUserLikedPost(postID, claims.UserID)
	if err != nil {
		return c.JSON(http.StatusOK, echo.Map{"liked": false})
	}
	return c.JSON(http.StatusOK, echo.Map{"liked": liked})
}

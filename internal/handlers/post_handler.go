package handlers

import (
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jaehyo-dev/school-hub/backend/internal/cache"
	"github.com/jaehyo-dev/school-hub/backend/internal/models"
	"github.com/jaehyo-dev/school-hub/backend/internal/policy"
	"github.com/jaehyo-dev/school-hub/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// textOnly strips markup so "content" consisting only of empty tags is
// rejected like truly empty content.
func textOnly(html string) string {
	return strings.TrimSpace(htmlTagPattern.ReplaceAllString(html, ""))
}

// PostHandler handles HTTP requests related to community posts
type PostHandler struct {
	postRepository    repositories.PostRepository
	commentRepository repositories.CommentRepository
	resolver          *policy.Resolver
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository, resolver *policy.Resolver) *PostHandler {
	return &PostHandler{
		postRepository:    postRepo,
		commentRepository: commentRepo,
		resolver:          resolver,
	}
}

// RegisterPublicRoutes registers the post routes readable without an identity
func (h *PostHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/posts", h.ListPosts)
	g.GET("/posts/:id", h.GetPost)
}

// RegisterPostRoutes registers the authenticated post routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.PUT("/posts/:id", h.UpdatePost)
	g.DELETE("/posts/:id", h.DeletePost)
}

type pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

type postListResponse struct {
	Posts      []models.PostView `json:"posts"`
	Pagination pagination        `json:"pagination"`
}

// ListPosts retrieves a viewer-filtered, optionally hot-ranked post listing
func (h *PostHandler) ListPosts(c echo.Context) error {
	viewer := viewerFrom(c, h.resolver)

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 {
		limit = 20
	}

	category := models.PostCategory(strings.ToUpper(c.QueryParam("category")))
	if category == "ALL" {
		category = ""
	}
	if category != "" && !category.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid category")
	}

	if c.QueryParam("hot") == "true" {
		return h.listHotPosts(c, viewer, page, limit)
	}

	opts := repositories.PostListOptions{Category: category, Page: page, Limit: limit}

	if category == models.CategoryQnA {
		// The Q&A listing is empty, not an error, for anonymous viewers.
		if !viewer.Authenticated() {
			return c.JSON(http.StatusOK, postListResponse{
				Posts:      []models.PostView{},
				Pagination: pagination{Page: page, Limit: limit},
			})
		}
		if c.QueryParam("mine") == "true" {
			opts.AuthorID = viewer.UserID
		}
	}

	if category == "" {
		// The mixed community feed never includes Q&A or club boards,
		// on top of whatever the client asked to exclude.
		opts.ExcludeCategories = policy.GeneralFeedExclusions()
		for _, raw := range c.QueryParams()["excludeCategory"] {
			excluded := models.PostCategory(strings.ToUpper(raw))
			if excluded.Valid() && !containsCategory(opts.ExcludeCategories, excluded) {
				opts.ExcludeCategories = append(opts.ExcludeCategories, excluded)
			}
		}
	}

	posts, total, err := h.postRepository.ListPosts(opts)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, postListResponse{
		Posts: h.decorate(posts, viewer),
		Pagination: pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages(total, limit),
		},
	})
}

// listHotPosts serves the recency-weighted feed. The scored page is cached
// briefly in Redis; cache misses fall through to a full scoring pass.
func (h *PostHandler) listHotPosts(c echo.Context, viewer policy.Viewer, page, limit int) error {
	ctx := c.Request().Context()
	cacheKey := fmt.Sprintf("hotfeed:%d:%d", page, limit)

	if !viewer.Authenticated() {
		var cached postListResponse
		if cache.GetJSON(ctx, cacheKey, &cached) {
			return c.JSON(http.StatusOK, cached)
		}
	}

	posts, err := h.postRepository.ListForRanking(policy.GeneralFeedExclusions())
	if err != nil {
		return httpError(err)
	}

	policy.SortByHotScore(posts, time.Now())

	total := int64(len(posts))
	start := (page - 1) * limit
	if start > len(posts) {
		start = len(posts)
	}
	end := start + limit
	if end > len(posts) {
		end = len(posts)
	}

	resp := postListResponse{
		Posts: h.decorate(posts[start:end], viewer),
		Pagination: pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages(total, limit),
		},
	}

	if !viewer.Authenticated() {
		cache.SetJSON(ctx, cacheKey, resp, time.Minute)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetPost retrieves a post with its visible comments
func (h *PostHandler) GetPost(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}
	viewer := viewerFrom(c, h.resolver)

	post, err := h.postRepository.GetPostByID(id)
	if err != nil {
		return httpError(err)
	}

	// The Q&A gate comes before the flag check so non-owners learn
	// nothing about a hidden question either way.
	if err := policy.CanViewPost(post, viewer); err != nil {
		return httpError(err)
	}
	if post.IsDeleted || post.IsHidden {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	comments, err := h.commentRepository.GetCommentsByPostID(post.ID)
	if err != nil {
		return httpError(err)
	}

	commentViews := make([]models.CommentView, 0, len(comments))
	for i := range comments {
		commentViews = append(commentViews, models.CommentView{
			Comment:     comments[i],
			DisplayName: policy.CommentDisplayName(&comments[i], &comments[i].Author),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"post": models.PostView{
			Post:        *post,
			DisplayName: policy.PostDisplayName(post, &post.Author, viewer),
		},
		"comments": commentViews,
	})
}

// CreatePost creates a new post owned by the caller
func (h *PostHandler) CreatePost(c echo.Context) error {
	claims := claimsFrom(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}
	if _, err := h.resolver.RequireStudentAccess(claims.FirebaseUID, claims.Email); err != nil {
		return httpError(err)
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if textOnly(req.Content) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Content is required")
	}

	category := models.CategoryFree
	if req.Category != "" {
		category = models.PostCategory(strings.ToUpper(req.Category))
		if !category.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid category")
		}
	}

	visibility := req.VisibilityName
	if visibility == "" {
		visibility = models.VisibilityNickname
	}

	post := &models.Post{
		Title:          strings.TrimSpace(req.Title),
		Content:        req.Content,
		Category:       category,
		AuthorID:       claims.UserID,
		VisibilityName: visibility,
	}

	if err := h.postRepository.CreatePost(post); err != nil {
		return httpError(err)
	}

	created, err := h.postRepository.GetPostByID(post.ID)
	if err != nil {
		return httpError(err)
	}
	viewer := viewerFrom(c, h.resolver)
	return c.JSON(http.StatusCreated, models.PostView{
		Post:        *created,
		DisplayName: policy.PostDisplayName(created, &created.Author, viewer),
	})
}

// UpdatePost lets the original author edit a post
func (h *PostHandler) UpdatePost(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}
	viewer := viewerFrom(c, h.resolver)

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if textOnly(req.Content) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Content is required")
	}

	post, err := h.postRepository.GetPostByID(id)
	if err != nil {
		return httpError(err)
	}
	if err := policy.CanEditPost(post, viewer); err != nil {
		return httpError(err)
	}

	post.Title = strings.TrimSpace(req.Title)
	post.Content = req.Content
	if req.Category != "" {
		category := models.PostCategory(strings.ToUpper(req.Category))
		if !category.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid category")
		}
		post.Category = category
	}
	if req.VisibilityName != "" {
		post.VisibilityName = req.VisibilityName
	}

	if err := h.postRepository.UpdatePost(post); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, models.PostView{
		Post:        *post,
		DisplayName: policy.PostDisplayName(post, &post.Author, viewer),
	})
}

// DeletePost soft-deletes a post on behalf of its author or an admin
func (h *PostHandler) DeletePost(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}
	viewer := viewerFrom(c, h.resolver)

	post, err := h.postRepository.GetPostByID(id)
	if err != nil {
		return httpError(err)
	}
	if err := policy.CanDeletePost(post, viewer); err != nil {
		return httpError(err)
	}

	if err := h.postRepository.SoftDeletePost(id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PostHandler) decorate(posts []models.Post, viewer policy.Viewer) []models.PostView {
	views := make([]models.PostView, 0, len(posts))
	for i := range posts {
		views = append(views, models.PostView{
			Post:        posts[i],
			DisplayName: policy.PostDisplayName(&posts[i], &posts[i].Author, viewer),
		})
	}
	return views
}

func containsCategory(categories []models.PostCategory, target models.PostCategory) bool {
	for _, c := range categories {
		if c == target {
			return true
		}
	}
	return false
}

func totalPages(total int64, limit int) int {
	return int((total + int64(limit) - 1) / int64(limit))
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return uint(id), nil
}

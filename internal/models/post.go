package models

import "gorm.io/gorm"

// PostCategory is the board a post belongs to.
type PostCategory string

const (
	CategoryFree         PostCategory = "FREE"
	CategoryConsultation PostCategory = "CONSULTATION"
	CategoryStudy        PostCategory = "STUDY"
	CategoryLostFound    PostCategory = "LOST_FOUND"
	CategoryInfo         PostCategory = "INFO"
	CategoryQnA          PostCategory = "QNA"
	CategoryAnnouncement PostCategory = "ANNOUNCEMENT"
	CategoryClub         PostCategory = "CLUB"
)

// Valid reports whether c is one of the known categories.
func (c PostCategory) Valid() bool {
	switch c {
	case CategoryFree, CategoryConsultation, CategoryStudy, CategoryLostFound,
		CategoryInfo, CategoryQnA, CategoryAnnouncement, CategoryClub:
		return true
	}
	return false
}

// Visibility modes controlling author disclosure on posts and comments.
const (
	VisibilityNickname  = "nickname"
	VisibilityAnonymous = "anonymous"
)

// Post represents a community board post. Posts are never hard-deleted;
// IsDeleted/IsHidden gate every read path.
type Post struct {
	gorm.Model
	Title          string       `json:"title"`
	Content        string       `json:"content" gorm:"type:text"` // rich HTML from the editor
	Category       PostCategory `json:"category" gorm:"type:varchar(20);index;default:'FREE'"`
	AuthorID       uint         `json:"author_id" gorm:"index"`
	Author         User         `json:"-" gorm:"foreignKey:AuthorID"`
	VisibilityName string       `json:"visibility_name" gorm:"type:varchar(20);default:'nickname'"`
	LikeCount      int          `json:"like_count" gorm:"default:0"`
	CommentCount   int          `json:"comment_count" gorm:"default:0"`
	IsDeleted      bool         `json:"is_deleted" gorm:"default:false;index"`
	IsHidden       bool         `json:"is_hidden" gorm:"default:false;index"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Title          string `json:"title" validate:"required,min=1,max=200"`
	Content        string `json:"content" validate:"required,min=1"`
	Category       string `json:"category" validate:"omitempty"`
	VisibilityName string `json:"visibility_name" validate:"omitempty,oneof=nickname anonymous"`
}

// UpdatePostRequest defines the request body for updating an existing post
type UpdatePostRequest struct {
	Title          string `json:"title" validate:"required,min=1,max=200"`
	Content        string `json:"content" validate:"required,min=1"`
	Category       string `json:"category" validate:"omitempty"`
	VisibilityName string `json:"visibility_name" validate:"omitempty,oneof=nickname anonymous"`
}

// PostView is a Post decorated with the viewer-dependent author disclosure.
type PostView struct {
	Post
	DisplayName string `json:"display_name"`
}

package models

import "gorm.io/gorm"

// Comment represents a comment on a post. Like posts, comments are
// soft-deleted only.
type Comment struct {
	gorm.Model
	PostID         uint   `json:"post_id" gorm:"index"`
	AuthorID       uint   `json:"author_id" gorm:"index"`
	Author         User   `json:"-" gorm:"foreignKey:AuthorID"`
	Content        string `json:"content"`
	VisibilityName string `json:"visibility_name" gorm:"type:varchar(20);default:'nickname'"`
	IsDeleted      bool   `json:"is_deleted" gorm:"default:false;index"`
	IsHidden       bool   `json:"is_hidden" gorm:"default:false;index"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Content        string `json:"content" validate:"required,min=1,max=1000"`
	VisibilityName string `json:"visibility_name" validate:"omitempty,oneof=nickname anonymous"`
}

// CommentView is a Comment decorated with the viewer-dependent author disclosure.
type CommentView struct {
	Comment
	DisplayName string `json:"display_name"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ArticleKind distinguishes curated content collections.
type ArticleKind string

const (
	ArticleNews ArticleKind = "news"
	ArticleClub ArticleKind = "club"
)

// Article is a curated rich-HTML page (news post or club section) stored in
// MongoDB. Articles are admin-authored and outside the moderation core.
type Article struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Kind        ArticleKind        `json:"kind" bson:"kind"`
	Title       string             `json:"title" bson:"title"`
	Summary     string             `json:"summary,omitempty" bson:"summary,omitempty"`
	Content     string             `json:"content" bson:"content"`
	Category    string             `json:"category,omitempty" bson:"category,omitempty"` // news only
	Section     string             `json:"section,omitempty" bson:"section,omitempty"`   // club only
	CoverImage  string             `json:"cover_image,omitempty" bson:"cover_image,omitempty"`
	Order       int                `json:"order" bson:"order"`
	IsPublished bool               `json:"is_published" bson:"is_published"`
	AuthorID    uint               `json:"author_id" bson:"author_id"`
	PublishedAt time.Time          `json:"published_at" bson:"published_at"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// CreateArticleRequest defines the request body for creating an article
type CreateArticleRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Summary     string `json:"summary,omitempty" validate:"omitempty,max=500"`
	Content     string `json:"content" validate:"required,min=1"`
	Category    string `json:"category,omitempty" validate:"omitempty,max=50"`
	Section     string `json:"section,omitempty" validate:"omitempty,max=50"`
	CoverImage  string `json:"cover_image,omitempty" validate:"omitempty,url"`
	Order       int    `json:"order,omitempty"`
	IsPublished *bool  `json:"is_published,omitempty"`
}

// UpdateArticleRequest defines the request body for updating an article
type UpdateArticleRequest struct {
	Title       string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Summary     string `json:"summary,omitempty" validate:"omitempty,max=500"`
	Content     string `json:"content,omitempty" validate:"omitempty,min=1"`
	Category    string `json:"category,omitempty" validate:"omitempty,max=50"`
	Section     string `json:"section,omitempty" validate:"omitempty,max=50"`
	CoverImage  string `json:"cover_image,omitempty" validate:"omitempty,url"`
	Order       *int   `json:"order,omitempty"`
	IsPublished *bool  `json:"is_published,omitempty"`
}

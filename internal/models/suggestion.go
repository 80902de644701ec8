package models

import "gorm.io/gorm"

// Suggestion is a feedback entry submitted by a community member. The
// display name is optional; admins read these from the console.
type Suggestion struct {
	gorm.Model
	Name     string `json:"name,omitempty"`
	Title    string `json:"title"`
	Content  string `json:"content" gorm:"type:text"`
	AuthorID *uint  `json:"author_id,omitempty" gorm:"index"`
}

// CreateSuggestionRequest defines the request body for submitting a suggestion
type CreateSuggestionRequest struct {
	Name    string `json:"name,omitempty" validate:"omitempty,max=50"`
	Title   string `json:"title" validate:"required,min=1,max=200"`
	Content string `json:"content" validate:"required,min=1,max=5000"`
}

package models

import "gorm.io/gorm"

// TeacherProfile is a directory entry for a teacher. Profiles are
// deactivated rather than removed so the public listing stays stable.
type TeacherProfile struct {
	gorm.Model
	UserID       uint   `json:"user_id" gorm:"uniqueIndex"`
	User         User   `json:"-" gorm:"foreignKey:UserID"`
	Name         string `json:"name"`
	Subject      string `json:"subject"`
	Email        string `json:"email"`
	Bio          string `json:"bio" gorm:"type:text"`
	ProfileImage string `json:"profile_image"`
	IsActive     bool   `json:"is_active" gorm:"default:true;index"`
}

// CreateTeacherRequest defines the request body for creating a teacher profile
type CreateTeacherRequest struct {
	UserID       uint   `json:"user_id" validate:"required"`
	Name         string `json:"name" validate:"required,min=1,max=50"`
	Subject      string `json:"subject" validate:"omitempty,max=50"`
	Email        string `json:"email" validate:"omitempty,email"`
	Bio          string `json:"bio" validate:"omitempty,max=2000"`
	ProfileImage string `json:"profile_image" validate:"omitempty,url"`
}

// UpdateTeacherRequest defines the request body for updating a teacher profile
type UpdateTeacherRequest struct {
	Name         string `json:"name,omitempty" validate:"omitempty,min=1,max=50"`
	Subject      string `json:"subject,omitempty" validate:"omitempty,max=50"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	Bio          string `json:"bio,omitempty" validate:"omitempty,max=2000"`
	ProfileImage string `json:"profile_image,omitempty" validate:"omitempty,url"`
	IsActive     *bool  `json:"is_active,omitempty"`
}

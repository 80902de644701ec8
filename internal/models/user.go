package models

import (
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// Role is the stored access role of a synced user.
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleParent  Role = "PARENT"
	RoleStaff   Role = "STAFF"
	RoleTeacher Role = "TEACHER"
	RoleVisitor Role = "VISITOR"
	RoleAdmin   Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleParent, RoleStaff, RoleTeacher, RoleVisitor, RoleAdmin:
		return true
	}
	return false
}

// User represents a community member synced from the identity provider.
// Exactly one row exists per external identity UID.
type User struct {
	gorm.Model  `json:"-"`
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name"`
	Nickname    string `json:"nickname"`
	Email       string `json:"email" gorm:"uniqueIndex"`
	Role        Role   `json:"role" gorm:"type:varchar(20);default:'VISITOR'"`
	FirebaseUID string `json:"firebase_uid,omitempty" gorm:"uniqueIndex"` // Link to identity provider UID
}

// UpdateUserRequest defines the request body for updating the caller's profile
type UpdateUserRequest struct {
	Name     string `json:"name,omitempty" validate:"omitempty,min=1,max=50"`
	Nickname string `json:"nickname,omitempty" validate:"omitempty,min=1,max=30"`
}

// UpdateUserRoleRequest defines the admin request body for changing a user's role
type UpdateUserRoleRequest struct {
	UserID uint   `json:"user_id" validate:"required"`
	Role   string `json:"role" validate:"required"`
}

// SyncEventRequest defines the payload of an identity provider webhook event
type SyncEventRequest struct {
	Type string        `json:"type" validate:"required,oneof=user.created user.updated user.deleted"`
	Data SyncEventData `json:"data"`
}

// SyncEventData carries the identity fields of a webhook event
type SyncEventData struct {
	ID        string `json:"id" validate:"required"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID      uint   `json:"user_id"`
	FirebaseUID string `json:"firebase_uid"`
	Email       string `json:"email"`
	jwt.RegisteredClaims
}

package models

import "time"

// ActionType is a moderation action an admin applies to a report.
// DISMISS transitions the report but is never logged as an AdminAction row.
type ActionType string

const (
	ActionHide    ActionType = "HIDE"
	ActionDelete  ActionType = "DELETE"
	ActionWarning ActionType = "WARNING"
	ActionSuspend ActionType = "SUSPEND"
	ActionDismiss ActionType = "DISMISS"
)

// Valid reports whether t is one of the known action types.
func (t ActionType) Valid() bool {
	switch t {
	case ActionHide, ActionDelete, ActionWarning, ActionSuspend, ActionDismiss:
		return true
	}
	return false
}

// AdminAction is an append-only audit record of a moderation action.
// Rows are never updated or deleted once written.
type AdminAction struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	ReportID    uint       `json:"report_id" gorm:"index"`
	AdminID     uint       `json:"admin_id" gorm:"index"`
	ActionType  ActionType `json:"action_type" gorm:"type:varchar(20)"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ApplyActionRequest defines the admin request body for acting on a report
type ApplyActionRequest struct {
	ActionType  string `json:"action_type" validate:"required"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
}

package models

import "gorm.io/gorm"

// ReportStatus is the lifecycle state of a user report.
type ReportStatus string

const (
	ReportPending   ReportStatus = "PENDING"
	ReportReviewed  ReportStatus = "REVIEWED"
	ReportResolved  ReportStatus = "RESOLVED"
	ReportDismissed ReportStatus = "DISMISSED"
)

// Report represents a user report against a post or a comment. Exactly one
// of PostID/CommentID is set. While a report is PENDING, further reports
// from the same reporter against the same target merge into it. Because the
// unset target column is NULL and NULLs never collide in a unique index,
// one partial index per target kind backs the merge up under concurrent
// submissions.
type Report struct {
	gorm.Model
	ReporterID  uint         `json:"reporter_id" gorm:"index;uniqueIndex:idx_pending_post_report;uniqueIndex:idx_pending_comment_report"`
	Reporter    User         `json:"-" gorm:"foreignKey:ReporterID"`
	PostID      *uint        `json:"post_id,omitempty" gorm:"index;uniqueIndex:idx_pending_post_report,where:status = 'PENDING' AND post_id IS NOT NULL"`
	CommentID   *uint        `json:"comment_id,omitempty" gorm:"index;uniqueIndex:idx_pending_comment_report,where:status = 'PENDING' AND comment_id IS NOT NULL"`
	Reason      string       `json:"reason"`
	ReportCount int          `json:"report_count" gorm:"default:1"`
	Status      ReportStatus `json:"status" gorm:"type:varchar(20);default:'PENDING';index"`
}

// CreateReportRequest defines the request body for submitting a report
type CreateReportRequest struct {
	PostID    *uint  `json:"post_id,omitempty"`
	CommentID *uint  `json:"comment_id,omitempty"`
	Reason    string `json:"reason" validate:"required,min=1,max=500"`
}

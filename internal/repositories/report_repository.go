package repositories

import (
	"errors"
	"fmt"

	"github.com/jaehyo-dev/school-hub/backend/internal/models"
	"github.com/jaehyo-dev/school-hub/backend/internal/policy"
	"gorm.io/gorm"
)

// ReportRepository defines the interface for report and moderation data
// operations.
type ReportRepository interface {
	CreateOrMerge(report *models.Report) (created bool, err error)
	GetReportByID(id uint) (*models.Report, error)
	ListReports(status models.ReportStatus) ([]models.Report, error)
	GetReportActions(reportID uint) ([]models.AdminAction, error)
	ApplyAction(reportID, adminID uint, actionType models.ActionType, description string) (*models.Report, *models.AdminAction, error)
}

// PostgresReportRepository implements ReportRepository for PostgreSQL
type PostgresReportRepository struct {
	db *gorm.DB
}

// NewPostgresReportRepository creates a new PostgresReportRepository
func NewPostgresReportRepository(db *gorm.DB) *PostgresReportRepository {
	return &PostgresReportRepository{db: db}
}

// CreateOrMerge files a report. A PENDING report by the same reporter
// against the same target absorbs the new one: reportCount goes up by one
// and the reason is replaced with the latest text. Terminal reports never
// merge, so a fresh report after resolution starts a new row.
func (r *PostgresReportRepository) CreateOrMerge(report *models.Report) (bool, error) {
	var created bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		query := tx.Where("reporter_id = ? AND status = ?", report.ReporterID, models.ReportPending)
		if report.PostID != nil {
			query = query.Where("post_id = ?", *report.PostID)
		} else {
			query = query.Where("comment_id = ?", *report.CommentID)
		}

		var existing models.Report
		err := query.First(&existing).Error
		if err == nil {
			existing.ReportCount++
			existing.Reason = report.Reason
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			*report = existing
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		report.Status = models.ReportPending
		report.ReportCount = 1
		if err := tx.Create(report).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	return created, err
}

// GetReportByID retrieves a report by ID
func (r *PostgresReportRepository) GetReportByID(id uint) (*models.Report, error) {
	var report models.Report
	if err := r.db.First(&report, id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// ListReports retrieves reports newest-first, optionally filtered by status
func (r *PostgresReportRepository) ListReports(status models.ReportStatus) ([]models.Report, error) {
	query := r.db.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var reports []models.Report
	if err := query.Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// GetReportActions retrieves the audit trail for one report, oldest first
func (r *PostgresReportRepository) GetReportActions(reportID uint) ([]models.AdminAction, error) {
	var actions []models.AdminAction
	err := r.db.Where("report_id = ?", reportID).
		Order("created_at ASC").
		Find(&actions).Error
	if err != nil {
		return nil, err
	}
	return actions, nil
}

// ApplyAction executes a moderation action: the target mutation, the report
// status transition and the audit-log insert commit as one transaction, so
// a failure leaves no partial state.
func (r *PostgresReportRepository) ApplyAction(reportID, adminID uint, actionType models.ActionType, description string) (*models.Report, *models.AdminAction, error) {
	outcome, err := policy.OutcomeFor(actionType)
	if err != nil {
		return nil, nil, err
	}

	var report models.Report
	var action *models.AdminAction

	err = r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&report, reportID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: report %d", policy.ErrNotFound, reportID)
			}
			return err
		}

		if outcome.HideTarget || outcome.DeleteTarget {
			column := "is_hidden"
			if outcome.DeleteTarget {
				column = "is_deleted"
			}
			if report.PostID != nil {
				if err := tx.Model(&models.Post{}).Where("id = ?", *report.PostID).Update(column, true).Error; err != nil {
					return err
				}
			} else if report.CommentID != nil {
				var comment models.Comment
				if err := tx.First(&comment, *report.CommentID).Error; err == nil {
					// Taking a visible comment down keeps the parent's
					// denormalized count in step, same as an author delete.
					if !comment.IsDeleted && !comment.IsHidden {
						err := tx.Model(&models.Post{}).
							Where("id = ? AND comment_count > 0", comment.PostID).
							Update("comment_count", gorm.Expr("comment_count - 1")).Error
						if err != nil {
							return err
						}
					}
					if err := tx.Model(&comment).Update(column, true).Error; err != nil {
						return err
					}
				}
			}
		}

		if outcome.SuspendAuthor {
			if authorID, ok := r.targetAuthorID(tx, &report); ok {
				if err := tx.Model(&models.User{}).Where("id = ?", authorID).Update("role", models.RoleVisitor).Error; err != nil {
					return err
				}
			}
			// An unresolvable author degrades to a no-op mutation; the
			// report still resolves and the action is still logged.
		}

		if err := tx.Model(&report).Update("status", outcome.Status).Error; err != nil {
			return err
		}
		report.Status = outcome.Status

		if outcome.Logged {
			action = &models.AdminAction{
				ReportID:    report.ID,
				AdminID:     adminID,
				ActionType:  actionType,
				Description: description,
			}
			if err := tx.Create(action).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &report, action, nil
}

// targetAuthorID resolves the author of the reported post or comment.
func (r *PostgresReportRepository) targetAuthorID(tx *gorm.DB, report *models.Report) (uint, bool) {
	if report.PostID != nil {
		var post models.Post
		if err := tx.First(&post, *report.PostID).Error; err != nil {
			return 0, false
		}
		return post.AuthorID, post.AuthorID != 0
	}
	if report.CommentID != nil {
		var comment models.Comment
		if err := tx.First(&comment, *report.CommentID).Error; err != nil {
			return 0, false
		}
		return comment.AuthorID, comment.AuthorID != 0
	}
	return 0, false
}

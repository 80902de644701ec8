package policy

import (
	"fmt"
	"strings"

	"github.com/jaehyo-dev/school-hub/backend/internal/models"
)

// ActionOutcome describes what applying a moderation action does: the new
// report status, the mutation on the reported target, and whether an
// AdminAction audit row is written.
type ActionOutcome struct {
	Status        models.ReportStatus
	HideTarget    bool
	DeleteTarget  bool
	SuspendAuthor bool
	Logged        bool
}

// OutcomeFor maps an action type to its outcome. The switch is exhaustive
// over the known action types; anything else is a validation error.
func OutcomeFor(actionType models.ActionType) (ActionOutcome, error) {
	switch actionType {
	case models.ActionHide:
		return ActionOutcome{Status: models.ReportResolved, HideTarget: true, Logged: true}, nil
	case models.ActionDelete:
		return ActionOutcome{Status: models.ReportResolved, DeleteTarget: true, Logged: true}, nil
	case models.ActionWarning:
		return ActionOutcome{Status: models.ReportReviewed, Logged: true}, nil
	case models.ActionSuspend:
		return ActionOutcome{Status: models.ReportResolved, SuspendAuthor: true, Logged: true}, nil
	case models.ActionDismiss:
		return ActionOutcome{Status: models.ReportDismissed}, nil
	}
	return ActionOutcome{}, fmt.Errorf("%w: invalid action type %q", ErrValidation, actionType)
}

// ValidateReportTarget checks that exactly one of postID/commentID is set
// and the reason is non-empty.
func ValidateReportTarget(postID, commentID *uint, reason string) error {
	if postID == nil && commentID == nil {
		return fmt.Errorf("%w: a post or comment id is required", ErrValidation)
	}
	if postID != nil && commentID != nil {
		return fmt.Errorf("%w: report exactly one of post or comment", ErrValidation)
	}
	if strings.TrimSpace(reason) == "" {
		return fmt.Errorf("%w: a report reason is required", ErrValidation)
	}
	return nil
}

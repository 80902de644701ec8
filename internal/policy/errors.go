package policy

import "errors"

// Error taxonomy shared by the policy core. Handlers translate these to
// HTTP status codes at the boundary; core code never sees echo.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

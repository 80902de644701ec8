package policy

import (
	"fmt"
	"strings"

	"github.com/jaehyo-dev/school-hub/backend/internal/models"
)

// UserSource is the subset of the user repository the resolver needs.
type UserSource interface {
	GetUserByFirebaseUID(firebaseUID string) (*models.User, error)
}

// Resolver maps external identity UIDs to stored roles and evaluates the
// school-email access rule against the configured domain allow-list.
type Resolver struct {
	users         UserSource
	schoolDomains []string
}

// NewResolver creates a Resolver. domains is the comma-separated
// SCHOOL_EMAIL_DOMAINS value, already split and trimmed by config.
func NewResolver(users UserSource, domains []string) *Resolver {
	return &Resolver{users: users, schoolDomains: domains}
}

// ResolveRole returns the stored role for an identity, or "" when the
// identity is unknown or the lookup fails. Callers that only need
// best-effort role info must tolerate the empty role.
func (r *Resolver) ResolveRole(firebaseUID string) models.Role {
	if firebaseUID == "" {
		return ""
	}
	user, err := r.users.GetUserByFirebaseUID(firebaseUID)
	if err != nil {
		return ""
	}
	return user.Role
}

// IsSchoolEmail reports whether the email's domain is in the configured
// school domain list. An empty list allows every signed-in user.
func (r *Resolver) IsSchoolEmail(email string) bool {
	if len(r.schoolDomains) == 0 {
		return true
	}
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	domain := email[at+1:]
	for _, d := range r.schoolDomains {
		if domain == d {
			return true
		}
	}
	return false
}

// DefaultRole decides the role assigned at first sync: STUDENT for school
// email domains, VISITOR for everyone else. An empty domain list never
// promotes, since the allow-list is the only evidence of enrollment.
func (r *Resolver) DefaultRole(email string) models.Role {
	if email == "" || len(r.schoolDomains) == 0 {
		return models.RoleVisitor
	}
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return models.RoleVisitor
	}
	domain := email[at+1:]
	for _, d := range r.schoolDomains {
		if domain == d {
			return models.RoleStudent
		}
	}
	return models.RoleVisitor
}

// RequireRole returns the user if the identity holds exactly the given role.
func (r *Resolver) RequireRole(firebaseUID string, role models.Role) (*models.User, error) {
	return r.RequireAnyRole(firebaseUID, role)
}

// RequireAnyRole returns the user if the identity holds one of the given
// roles; ErrUnauthorized without an identity, ErrForbidden otherwise.
func (r *Resolver) RequireAnyRole(firebaseUID string, roles ...models.Role) (*models.User, error) {
	if firebaseUID == "" {
		return nil, ErrUnauthorized
	}
	user, err := r.users.GetUserByFirebaseUID(firebaseUID)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown identity", ErrForbidden)
	}
	for _, role := range roles {
		if user.Role == role {
			return user, nil
		}
	}
	return nil, fmt.Errorf("%w: insufficient role", ErrForbidden)
}

// RequireAdmin returns the user if the identity holds the ADMIN role.
func (r *Resolver) RequireAdmin(firebaseUID string) (*models.User, error) {
	return r.RequireRole(firebaseUID, models.RoleAdmin)
}

// RequireStudentAccess grants Student Community access. STUDENT role always
// passes. VISITOR is a hard block, even with a school email. Any other role
// (including an unsynced identity) passes only the email-domain check.
func (r *Resolver) RequireStudentAccess(firebaseUID, email string) (*models.User, error) {
	if firebaseUID == "" {
		return nil, ErrUnauthorized
	}
	user, err := r.users.GetUserByFirebaseUID(firebaseUID)
	if err != nil {
		user = nil
	}
	if user != nil {
		if user.Role == models.RoleVisitor {
			return nil, fmt.Errorf("%w: VISITOR role cannot access the student community", ErrForbidden)
		}
		if user.Role == models.RoleStudent {
			return user, nil
		}
		if email == "" {
			email = user.Email
		}
	}
	if r.IsSchoolEmail(email) {
		return user, nil
	}
	return nil, fmt.Errorf("%w: student role or school email required", ErrForbidden)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/jaehyo-dev/school-hub/backend/internal/models"
	"github.com/jaehyo-dev/school-hub/backend/internal/policy"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// claimsFrom returns the JWT claims set by the auth middleware, or nil when
// the request carried no identity.
func claimsFrom(c echo.Context) *models.JwtCustomClaims {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return nil
	}
	return claims
}

// viewerFrom builds the policy viewer for the request: identity from the
// JWT claims, role looked up best-effort through the resolver. Anonymous
// requests yield the zero viewer.
func viewerFrom(c echo.Context, resolver *policy.Resolver) policy.Viewer {
	claims := claimsFrom(c)
	if claims == nil {
		return policy.Viewer{}
	}
	return policy.Viewer{
		UserID: claims.UserID,
		Role:   resolver.ResolveRole(claims.FirebaseUID),
	}
}

// httpError translates policy and persistence errors into echo HTTP errors.
// Unexpected errors surface as a generic failure without internal detail.
func httpError(err error) error {
	switch {
	case errors.Is(err, policy.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	case errors.Is(err, policy.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, policy.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, policy.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Not found")
	case errors.Is(err, policy.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
}

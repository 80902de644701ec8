package validators

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator adapts go-playground/validator to Echo's Validator interface.
type CustomValidator struct {
	validate *validator.Validate
}

// NewValidator creates a validator for request payload structs.
func NewValidator() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate runs struct tag validation and converts failures to 400 errors.
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

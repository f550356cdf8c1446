package serverutils

import (
	"hulunote-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation and converts failures into
// BadRequest errors.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return apperror.BadRequest("Invalid request: %v", err)
	}
	return nil
}

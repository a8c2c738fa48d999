package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/minutemind/minutemind/internal/domain/entities"
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance with domain validations
// registered
func New() *CustomValidator {
	v := validator.New()

	// task_status accepts only the known lifecycle states
	_ = v.RegisterValidation("task_status", func(fl validator.FieldLevel) bool {
		return entities.TaskStatus(fl.Field().String()).IsValid()
	})

	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}

package validation

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterBindings attaches the domain validators to Gin's binding
// engine so request DTOs can use them in binding tags.
func RegisterBindings() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}

	if err := v.RegisterValidation("admissionno", func(fl validator.FieldLevel) bool {
		return IsValidAdmissionNo(fl.Field().String())
	}); err != nil {
		return fmt.Errorf("failed to register admissionno validator: %w", err)
	}

	return nil
}

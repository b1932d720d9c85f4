package serverutils

import (
	"fmt"
	"strings"

	"parts-catalog-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest checks a DTO against its validate tags. The first failing
// field is reported as a typed validation error.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		fe := errs[0]
		field := strings.ToLower(fe.Field())
		return apperror.Validation(field, fmt.Sprintf("failed on the '%s' rule", fe.Tag()))
	}
	return apperror.Validation("", err.Error())
}

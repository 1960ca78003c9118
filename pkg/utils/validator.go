package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"taskflow-api/domain/apperrors"
)

var validate = validator.New()

// ValidateStruct checks struct tag constraints (length caps and the like).
// Enum membership and required-field checks live in the DTO normalization
// stage, which reports them with ordered, field-level errors.
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// GetValidationError converts the first validator failure into the API's
// field-level validation error.
func GetValidationError(err error) *apperrors.ValidationError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := jsonFieldName(fe)
		return apperrors.NewValidationError(field, fmt.Sprintf("%s failed %s validation", field, fe.Tag()))
	}
	return apperrors.NewValidationError("", "invalid request body")
}

func jsonFieldName(fe validator.FieldError) string {
	// validator reports the Go field name; lower-case the first rune to match
	// the camelCase JSON keys this API uses.
	name := fe.Field()
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

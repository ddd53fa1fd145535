package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes a single violated constraint on a request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries one entry per violated constraint and renders as a
// 400 with a structured error list in the central error handler.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, fe := range e.Fields {
		msgs = append(msgs, fe.Message)
	}
	return strings.Join(msgs, "; ")
}

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			fields := make([]FieldError, 0, len(ve))
			for _, fe := range ve {
				fields = append(fields, fieldError(fe))
			}
			return &ValidationError{Fields: fields}
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a structured entry.
func fieldError(fe validator.FieldError) FieldError {
	field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
	var msg string
	switch fe.Tag() {
	case "required":
		msg = field + " is required"
	case "min":
		msg = fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		msg = fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gte":
		msg = fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		msg = fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		msg = fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "datetime":
		msg = fmt.Sprintf("%s must be a date in %s format", field, fe.Param())
	default:
		msg = fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
	return FieldError{Field: field, Message: msg}
}

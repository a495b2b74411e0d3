package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/deppfellow/user-service/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
//   - Define a request struct with validator tags (`validate:"required,useremail"`)
//   - Implement Validate() error that runs Validate().Struct(req)
//   - Return validator.ValidationErrors, CustomValidationErrors, or either
//     wrapped by WithMessage
type Validatable interface {
	Validate() error
}

// ValidatorFunc adapts a function to Validatable.
type ValidatorFunc func() error

func (f ValidatorFunc) Validate() error {
	return f()
}

// DefaultMessage is the top-level message of a validation failure that did
// not choose its own.
const DefaultMessage = "Validation failed"

// CustomValidationError represents a single validation issue for a specific field.
// This is used for validation errors that cannot be expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return DefaultMessage
}

// MessageError attaches the top-level client message to a validation error.
type MessageError struct {
	Message string
	Err     error
}

func (e *MessageError) Error() string {
	return e.Message
}

func (e *MessageError) Unwrap() error {
	return e.Err
}

// WithMessage wraps a validation error so it is reported with message
// instead of DefaultMessage.
func WithMessage(message string, err error) error {
	if err == nil {
		return nil
	}
	return &MessageError{Message: message, Err: err}
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. c.Bind(payload) populates the struct from path params and the JSON body.
//  2. payload.Validate() applies validation rules.
//  3. Any failure becomes a 400 *errs.HTTPError.
//
// payload must be a pointer to a struct.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError("Invalid request body.", false, nil, nil)
	}

	return ValidateStruct(payload)
}

// ValidateStruct runs payload.Validate() and converts a failure into a 400
// *errs.HTTPError carrying field errors.
func ValidateStruct(payload Validatable) error {
	if err := payload.Validate(); err != nil {
		msg, fieldErrors := extractValidationError(err)
		return errs.NewBadRequestError(msg, true, nil, fieldErrors)
	}
	return nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	message := DefaultMessage

	var messageErr *MessageError
	if errors.As(err, &messageErr) {
		message = messageErr.Message
	}

	var fieldErrors []errs.FieldError

	var customValidationErrors CustomValidationErrors
	if errors.As(err, &customValidationErrors) {
		for _, err := range customValidationErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: err.Field,
				Error: err.Message,
			})
		}
	}

	var validationErrors validator.ValidationErrors
	errors.As(err, &validationErrors)

	// Convert validator.ValidationErrors into user-friendly messages.
	for _, err := range validationErrors {
		field := strings.ToLower(err.Field())
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"

		case "min":
			// strings: minimum length, numbers: minimum value
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", err.Param())
			}

		case "max":
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", err.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", err.Param())

		case "email", TagUserEmail:
			msg = "must be a valid email address"

		case "uuid":
			msg = "must be a valid UUID"

		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, err.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return message, fieldErrors
}

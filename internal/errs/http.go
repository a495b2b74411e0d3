// Package errs defines custom error types and utilities.
//
// Its purpose is to give every failure a specific structure (HTTPError for
// API responses, FieldError for payload validation) so clients receive
// consistent error messages:
//
//	{ "error": "User not found." }
//
// HTTPError also plays nicely with the standard errors package (errors.As).
package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "email", "error": "must be a valid email address" }
type FieldError struct {
	// Field is the JSON name of the field the error relates to.
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the main custom error type for API responses.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST"), logged only.
//   - Message: human-friendly message, sent to the client as "error".
//   - Status: HTTP status code.
//   - Override: the message is safe to show as-is, even for 5xx.
//   - Errors: per-field validation errors.
type HTTPError struct {
	Code     string
	Message  string
	Status   int
	Override bool
	Errors   []FieldError
}

// Error makes *HTTPError satisfy the built-in error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError, regardless of its fields.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
	}
}

// Response returns the JSON body written for this error. Field errors
// are not part of it; the error handler logs them.
func (e *HTTPError) Response() Response {
	return Response{
		Error: e.Message,
	}
}

// Response is the error body every failed request receives:
//
//	{ "error": "<message>" }
type Response struct {
	Error string `json:"error"`
}

// MakeUpperCaseWithUnderscores converts a string into UPPER_CASE_WITH_UNDERSCORES.
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}

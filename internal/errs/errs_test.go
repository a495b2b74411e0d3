package errs

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	notFound := NewNotFoundError("User not found.", false, nil)
	assert.Equal(t, http.StatusNotFound, notFound.Status)
	assert.Equal(t, "NOT_FOUND", notFound.Code)

	code := "USER_INVALID"
	badRequest := NewBadRequestError("Invalid email format.", true, &code, nil)
	assert.Equal(t, http.StatusBadRequest, badRequest.Status)
	assert.Equal(t, "USER_INVALID", badRequest.Code)
	assert.True(t, badRequest.Override)

	internal := NewInternalServerError()
	assert.Equal(t, http.StatusInternalServerError, internal.Status)
	assert.Equal(t, "Internal Server Error", internal.Message)
}

func TestHTTPErrorSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("updating user: %w", NewNotFoundError("User not found.", false, nil))

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.True(t, errors.Is(err, &HTTPError{}))
}

func TestResponseShape(t *testing.T) {
	body, err := json.Marshal(NewNotFoundError("User not found.", false, nil).Response())
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"User not found."}`, string(body))

	withFields := NewBadRequestError("Validation failed", false, nil, []FieldError{
		{Field: "email", Error: "must be a valid email address"},
	})
	body, err = json.Marshal(withFields.Response())
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"Validation failed"}`, string(body), "field errors stay out of the body")
}

func TestWithMessageCopies(t *testing.T) {
	base := NewNotFoundError("Resource not found", false, nil)
	custom := base.WithMessage("User not found.")

	assert.Equal(t, "Resource not found", base.Message)
	assert.Equal(t, "User not found.", custom.Message)
	assert.Equal(t, base.Status, custom.Status)
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
}

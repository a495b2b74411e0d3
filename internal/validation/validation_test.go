package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/user-service/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"alice@example.com", true},
		{"ALICE@EXAMPLE.COM", true},
		{"first.last-name@sub.domain.org", true},
		{"under_score@host-name.io", true},
		{"x@y.museum", true},
		{"a@b.abcdefg", true},
		{"", false},
		{"alice", false},
		{"alice@", false},
		{"@example.com", false},
		{"alice@example", false},
		{"alice@example.c", false},
		{"alice@example.abcdefgh", false},
		{"alice@example.c0m", false},
		{"al ice@example.com", false},
		{"alice+tag@example.com", false},
		{"alice@example.com ", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidEmail(tt.email))
		})
	}
}

type signupPayload struct {
	Email string `json:"email" validate:"required,useremail"`
	Age   int    `json:"age" validate:"min=1"`
}

func (p *signupPayload) Validate() error {
	return Validate().Struct(p)
}

type summarizedPayload struct {
	signupPayload
}

func (p *summarizedPayload) Validate() error {
	return WithMessage("Invalid signup.", p.signupPayload.Validate())
}

type customPayload struct{}

func (p *customPayload) Validate() error {
	return CustomValidationErrors{{Field: "name", Message: "is reserved"}}
}

func TestValidateStructFieldErrors(t *testing.T) {
	err := ValidateStruct(&signupPayload{Email: "nope", Age: 0})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, DefaultMessage, httpErr.Message)
	assert.ElementsMatch(t, []errs.FieldError{
		{Field: "email", Error: "must be a valid email address"},
		{Field: "age", Error: "must be at least 1"},
	}, httpErr.Errors)
}

func TestValidateStructCustomMessage(t *testing.T) {
	err := ValidateStruct(&summarizedPayload{signupPayload{Email: "", Age: 3}})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, "Invalid signup.", httpErr.Message)
	assert.Equal(t, []errs.FieldError{{Field: "email", Error: "is required"}}, httpErr.Errors)
}

func TestValidateStructCustomErrors(t *testing.T) {
	err := ValidateStruct(&customPayload{})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, []errs.FieldError{{Field: "name", Error: "is reserved"}}, httpErr.Errors)
}

func TestValidateStructPasses(t *testing.T) {
	assert.NoError(t, ValidateStruct(&signupPayload{Email: "bob@example.com", Age: 35}))
	assert.Nil(t, WithMessage("unused", nil))
}

func TestBindAndValidate(t *testing.T) {
	e := echo.New()

	newContext := func(body string) echo.Context {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		return e.NewContext(req, httptest.NewRecorder())
	}

	t.Run("valid body", func(t *testing.T) {
		payload := &signupPayload{}
		require.NoError(t, BindAndValidate(newContext(`{"email":"bob@example.com","age":35}`), payload))
		assert.Equal(t, 35, payload.Age)
	})

	t.Run("malformed json", func(t *testing.T) {
		err := BindAndValidate(newContext(`{"email":`), &signupPayload{})

		var httpErr *errs.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, "Invalid request body.", httpErr.Message)
	})

	t.Run("wrong type", func(t *testing.T) {
		err := BindAndValidate(newContext(`{"email":"bob@example.com","age":"old"}`), &signupPayload{})

		var httpErr *errs.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, "Invalid request body.", httpErr.Message)
	})
}

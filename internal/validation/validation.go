// Package validation contains the logic for validating
// request data.
//
// It uses the `validator` library to enforce rules (like
// required fields or email formats) defined in struct tags
// and extracts validation errors into a format the client can
// understand
package validation

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

// TagUserEmail is the validator tag backed by IsValidEmail.
const TagUserEmail = "useremail"

// emailRegex accepts local@domain.tld where local and domain are word
// characters, dots and hyphens and tld is 2 to 7 letters, any case.
var emailRegex = regexp.MustCompile(`(?i)^[\w\-.]+@[\w\-.]+\.[a-z]{2,7}$`)

// IsValidEmail reports whether email matches the accepted address format.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Validate returns the shared validator with the custom tags registered.
// validator.Validate caches struct metadata and is safe for concurrent use.
var Validate = sync.OnceValue(func() *validator.Validate {
	v := validator.New()

	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation(TagUserEmail, func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})

	return v
})

package user

import (
	"github.com/deppfellow/user-service/internal/validation"
	"github.com/go-playground/validator/v10"
)

const (
	// MessageRequiredFields is returned when a create payload misses any field.
	MessageRequiredFields = "Name, email, and age are required."
	// MessageInvalidEmail is returned for an email failing validation.IsValidEmail.
	MessageInvalidEmail = "Invalid email format."
	// MessageNotFound is returned for unknown identifiers.
	MessageNotFound = "User not found."
)

// CreateUserPayload is the body of POST /users.
//
// "required" treats empty strings and 0 as missing, the same way a null or
// absent field is.
type CreateUserPayload struct {
	Name  string  `json:"name" validate:"required"`
	Email string  `json:"email" validate:"required,useremail"`
	Age   float64 `json:"age" validate:"required"`
}

func (p *CreateUserPayload) Validate() error {
	return withUserMessage(validation.Validate().Struct(p))
}

// ToUser builds the record to store under id.
func (p *CreateUserPayload) ToUser(id string) User {
	return User{
		ID:    id,
		Name:  p.Name,
		Email: p.Email,
		Age:   p.Age,
	}
}

// UpdateUserPayload is PUT /users/:id. Every body field is optional.
type UpdateUserPayload struct {
	ID    string  `param:"id" json:"-"`
	Name  string  `json:"name"`
	Email string  `json:"email" validate:"omitempty,useremail"`
	Age   float64 `json:"age"`
}

// Validate accepts every bound payload. The email is checked by
// ValidateEmail once the user is known to exist, so an unknown id is a
// 404 even when the email is bad.
func (p *UpdateUserPayload) Validate() error {
	return nil
}

// ValidateEmail checks the optional email field.
func (p *UpdateUserPayload) ValidateEmail() error {
	return withUserMessage(validation.Validate().StructPartial(p, "Email"))
}

// Patch returns the update to apply.
func (p *UpdateUserPayload) Patch() Patch {
	return Patch{
		Name:  p.Name,
		Email: p.Email,
		Age:   p.Age,
	}
}

// GetUserPayload identifies a user by path id (GET and DELETE).
// Any id is acceptable; unknown ones are a 404 from the service. A body
// never overrides the path id.
type GetUserPayload struct {
	ID string `param:"id" json:"-"`
}

func (p *GetUserPayload) Validate() error {
	return nil
}

// ListUsersPayload is GET /users. It carries no input.
type ListUsersPayload struct{}

func (p *ListUsersPayload) Validate() error {
	return nil
}

// withUserMessage attaches the summary message clients expect: missing
// fields win over a bad email.
func withUserMessage(err error) error {
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	for _, fe := range validationErrors {
		if fe.Tag() == "required" {
			return validation.WithMessage(MessageRequiredFields, err)
		}
	}
	return validation.WithMessage(MessageInvalidEmail, err)
}

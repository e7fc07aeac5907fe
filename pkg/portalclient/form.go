package portalclient

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Validation errors carry the exact copy the portal shows inline; callers
// display them as-is.
var (
	ErrMissingFields      = errors.New("Please complete all required fields.")
	ErrPasswordMismatch   = errors.New("Passwords do not match.")
	ErrMissingCredentials = errors.New("Please enter both email and password.")
)

var validate = validator.New()

// SignupForm mirrors the portal's signup page. The password pair exists only
// for local validation; it is never sent to the backend.
type SignupForm struct {
	Email           string `validate:"required"`
	Password        string `validate:"required"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
	FirstName       string
	LastName        string
	Phone           string
	DateOfBirth     string
	Address         string
}

// Validate applies the portal's local checks: the login fields must be
// present, and the passwords must agree. Missing fields are reported before
// a mismatch, matching the form's behavior.
func (f SignupForm) Validate() error {
	if f.Email == "" || f.Password == "" || f.ConfirmPassword == "" {
		return ErrMissingFields
	}
	if err := validate.Struct(f); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				if fe.Tag() == "eqfield" {
					return ErrPasswordMismatch
				}
			}
		}
		return ErrMissingFields
	}
	return nil
}

// LoginForm mirrors the portal's login page. Login never reaches the
// backend; validation is all there is.
type LoginForm struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

func (f LoginForm) Validate() error {
	if err := validate.Struct(f); err != nil {
		return ErrMissingCredentials
	}
	return nil
}

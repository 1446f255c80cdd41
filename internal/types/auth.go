package types

import "github.com/go-playground/validator/v10"

// UserProfile carries the account classification used for routing
// between the candidate and recruiter surfaces.
type UserProfile struct {
	UserType string `json:"user_type"`
}

// User is the account payload returned by the auth endpoints.
type User struct {
	ID        int          `json:"id,omitempty"`
	Username  string       `json:"username"`
	Email     string       `json:"email,omitempty"`
	FirstName string       `json:"first_name,omitempty"`
	LastName  string       `json:"last_name,omitempty"`
	Profile   *UserProfile `json:"user_profile,omitempty"`
}

// LoginRequest is the credential payload for POST /auth/login/.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignupRequest is the registration payload for POST /auth/signup/.
// ConfirmPassword is checked client-side and never sent.
type SignupRequest struct {
	Username        string `json:"username" validate:"required,min=3"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"-" validate:"eqfield=Password"`
	UserType        string `json:"user_type" validate:"required,oneof=employee company"`
}

// AuthResponse is the shared login/signup response shape.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SignupRequest using the validator.
func (r *SignupRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

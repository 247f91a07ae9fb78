package ports

import (
	"context"

	"github.com/viktorgkw/AuthTemplate/internal/core/domain"
)

// RegisterRequest carries the registration input. All fields are required.
type RegisterRequest struct {
	Email       string
	Username    string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber string
}

// LoginRequest carries the login credentials.
type LoginRequest struct {
	Email    string
	Password string
}

// AuthService exposes the registration and login workflows. Expected
// failures (bad input, email in use, wrong credentials) are reported in
// the result value; a non-nil error means an infrastructure fault.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (domain.RegistrationResult, error)
	Login(ctx context.Context, req LoginRequest) (domain.LoginResult, error)
}

// TokenIssuer produces a signed, time-bounded bearer token from a claim set.
type TokenIssuer interface {
	Issue(claims domain.AuthClaims) (string, error)
}

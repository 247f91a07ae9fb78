package service

import (
	"regexp"

	"github.com/viktorgkw/AuthTemplate/internal/core/domain"
	"github.com/viktorgkw/AuthTemplate/internal/core/ports"
)

// emailPattern accepts local-part@domain where the domain is dot-separated
// labels ending in a 2-4 letter top-level label.
var emailPattern = regexp.MustCompile(`^[\w\-.]+@([\w\-]+\.)+[\w\-]{2,4}$`)

// ValidateRegistration checks a registration request for completeness and
// email well-formedness. Every field is mandatory. Pure function of its
// input; returns domain.ErrMissingField or domain.ErrInvalidEmail.
func ValidateRegistration(req ports.RegisterRequest) error {
	if req.Email == "" || req.Username == "" || req.Password == "" ||
		req.FirstName == "" || req.LastName == "" || req.PhoneNumber == "" {
		return domain.ErrMissingField
	}
	if !emailPattern.MatchString(req.Email) {
		return domain.ErrInvalidEmail
	}
	return nil
}

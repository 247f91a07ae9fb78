package domain

import (
	"errors"
	"strings"
)

var (
	ErrMissingField  = errors.New("missing required field")
	ErrInvalidEmail  = errors.New("invalid email")
	ErrUserNotFound  = errors.New("user not found")
	ErrUserHasNoRole = errors.New("user has no assigned roles")
	ErrEmptySecret   = errors.New("signing secret is empty")
)

// AccountError reports one or more store-level failures from account
// creation or role assignment (password policy violations, duplicate
// email at the index, unknown role). Descriptions keep the order the
// store reported them in.
type AccountError struct {
	Descriptions []string
}

func (e *AccountError) Error() string {
	return strings.Join(e.Descriptions, "\n")
}

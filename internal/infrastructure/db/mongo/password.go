package mongo

import (
	"fmt"
	"unicode"
)

// PasswordPolicy validates candidate passwords before they are hashed.
// Each violated rule contributes one description so callers can report
// every problem at once.
type PasswordPolicy struct {
	RequireDigit           bool
	RequireLowercase       bool
	RequireUppercase       bool
	RequireNonAlphanumeric bool
	RequiredLength         int
	RequiredUniqueChars    int
}

// Validate returns one description per violated rule, in a fixed order.
// An empty slice means the password satisfies the policy.
func (p PasswordPolicy) Validate(password string) []string {
	var (
		hasDigit   bool
		hasLower   bool
		hasUpper   bool
		hasSpecial bool
		unique     = make(map[rune]struct{})
	)
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		default:
			hasSpecial = true
		}
		unique[r] = struct{}{}
	}

	var errs []string
	if p.RequiredLength > 0 && len([]rune(password)) < p.RequiredLength {
		errs = append(errs, fmt.Sprintf("Passwords must be at least %d characters.", p.RequiredLength))
	}
	if p.RequireDigit && !hasDigit {
		errs = append(errs, "Passwords must have at least one digit ('0'-'9').")
	}
	if p.RequireLowercase && !hasLower {
		errs = append(errs, "Passwords must have at least one lowercase ('a'-'z').")
	}
	if p.RequireUppercase && !hasUpper {
		errs = append(errs, "Passwords must have at least one uppercase ('A'-'Z').")
	}
	if p.RequireNonAlphanumeric && !hasSpecial {
		errs = append(errs, "Passwords must have at least one non alphanumeric character.")
	}
	if p.RequiredUniqueChars > 0 && len(unique) < p.RequiredUniqueChars {
		errs = append(errs, fmt.Sprintf("Passwords must use at least %d different characters.", p.RequiredUniqueChars))
	}
	return errs
}

package mongo

import (
	"strings"
	"testing"
)

func strictPolicy() PasswordPolicy {
	return PasswordPolicy{
		RequireDigit:           true,
		RequireLowercase:       true,
		RequireUppercase:       true,
		RequireNonAlphanumeric: true,
		RequiredLength:         8,
		RequiredUniqueChars:    4,
	}
}

func TestPasswordPolicy_Valid(t *testing.T) {
	if errs := strictPolicy().Validate("Sup3r$ecret"); len(errs) != 0 {
		t.Fatalf("expected no violations, got %v", errs)
	}
}

func TestPasswordPolicy_ReportsEveryViolation(t *testing.T) {
	errs := strictPolicy().Validate("aa")
	// too short, no digit, no uppercase, no special, not enough unique chars
	if len(errs) != 5 {
		t.Fatalf("expected 5 violations, got %d: %v", len(errs), errs)
	}
	if !strings.Contains(errs[0], "at least 8 characters") {
		t.Fatalf("expected length violation first, got %q", errs[0])
	}
}

func TestPasswordPolicy_SingleRule(t *testing.T) {
	cases := []struct {
		password string
		want     string
	}{
		{"alllower$3cret", "uppercase"},
		{"ALLUPPER$3CRET", "lowercase"},
		{"NoDigits$ecret", "digit"},
		{"NoSpecial3cret", "non alphanumeric"},
	}
	for _, tc := range cases {
		errs := strictPolicy().Validate(tc.password)
		if len(errs) != 1 || !strings.Contains(errs[0], tc.want) {
			t.Fatalf("password %q: expected single %q violation, got %v", tc.password, tc.want, errs)
		}
	}
}

func TestPasswordPolicy_Disabled(t *testing.T) {
	if errs := (PasswordPolicy{}).Validate("x"); len(errs) != 0 {
		t.Fatalf("empty policy must accept anything, got %v", errs)
	}
}

package domain

import "time"

const (
	// RoleUser is the default role assigned to every new account.
	RoleUser          = "User"
	RoleAdministrator = "Administrator"
)

// Roles lists every role the service knows about, in seeding order.
var Roles = []string{RoleUser, RoleAdministrator}

// User is the flat account entity persisted by the user store.
// The password hash is the only secret an account retains; the plaintext
// password is handed to the store at creation time and never stored.
type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Username      string    `json:"username"`
	PasswordHash  string    `json:"-"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	PhoneNumber   string    `json:"phone_number,omitempty"`
	IsActive      bool      `json:"is_active"`
	SecurityStamp string    `json:"-"`
	Roles         []string  `json:"roles,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

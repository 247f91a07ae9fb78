package domain

// Outcome messages returned to callers. The exact wording is part of the
// API contract and covered by tests.
const (
	MsgSuccessfulRegistration = "Registration was successful!"
	MsgMissingFields          = "All fields are required!"
	MsgInvalidEmail           = "Email is not valid!"
	MsgEmailInUse             = "Email is already in use!"

	MsgSuccessfulLogin    = "Login was successful!"
	MsgInvalidCredentials = "Invalid credentials!"
)

// RegistrationStatus tags a RegistrationResult.
type RegistrationStatus string

const (
	RegistrationSuccessful RegistrationStatus = "successful"
	RegistrationFailed     RegistrationStatus = "failed"
)

// RegistrationResult is the outcome of the registration workflow.
// Failures are part of the value, not errors; only infrastructure
// faults surface as errors.
type RegistrationResult struct {
	Status  RegistrationStatus `json:"status"`
	Message string             `json:"message"`
}

// LoginResult is the outcome of the login workflow. Token is empty on
// failure; Message is always set.
type LoginResult struct {
	Token   string `json:"token,omitempty"`
	Message string `json:"message"`
}

// AuthClaims is the ephemeral claim set handed to the token issuer.
// It exists only for the duration of token construction.
type AuthClaims struct {
	Subject     string // account id
	Email       string
	DisplayName string // username
	Role        string // primary role
	Nonce       string // unique per token (jti)
}

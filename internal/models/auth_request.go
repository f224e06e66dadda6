package models

// SignupRequest represents the request body for user signup.
// Presence checks live in the service so the core contract is enforced
// independently of the transport.
type SignupRequest struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phone_number,omitempty"`
	DOB             string `json:"dob,omitempty"` // YYYY-MM-DD
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest represents the request body for user login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

package models

// SignupResponse confirms a newly created account. It never carries
// password data.
type SignupResponse struct {
	Status string `json:"status"` // always "created"
	UserID int64  `json:"user_id"`
}

// LoginResponse confirms a successful authentication.
type LoginResponse struct {
	Status string `json:"status"` // always "ok"
	UserID int64  `json:"user_id"`
}

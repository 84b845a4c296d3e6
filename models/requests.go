package models

// RegisterRequest is the payload of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest is the payload of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// StartSessionRequest is the payload of POST /api/sessions.
type StartSessionRequest struct {
	TaskName string `json:"task_name"`
}

// EarningsRequest is the payload of POST /api/earnings.
type EarningsRequest struct {
	Month  int   `json:"month"`
	Year   int   `json:"year"`
	Amount Money `json:"amount"`
}

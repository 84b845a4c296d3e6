package models

// UserResponse wraps a single user.
type UserResponse struct {
	User User `json:"user"`
}

// SessionResponse wraps a single session. Session is nil when there is
// none, e.g. no active session.
type SessionResponse struct {
	Session *WorkSession `json:"session"`
}

// SessionsResponse wraps a list of sessions.
type SessionsResponse struct {
	Sessions []WorkSession `json:"sessions"`
}

// JournalResponse wraps journal days, newest first.
type JournalResponse struct {
	Days []JournalDay `json:"days"`
}

// EarningsResponse wraps a single earnings record.
type EarningsResponse struct {
	Earnings MonthlyEarnings `json:"earnings"`
}

// EarningsListResponse wraps earnings records, newest period first.
type EarningsListResponse struct {
	Earnings []MonthlyEarnings `json:"earnings"`
}

// MetricsResponse wraps a metrics snapshot.
type MetricsResponse struct {
	Metrics Metrics `json:"metrics"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}

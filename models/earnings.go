package models

import "time"

// MonthlyEarnings is the income a user recorded for one calendar month.
// There is at most one record per (UserID, Month, Year); writing the same
// period again replaces Amount and keeps ID.
type MonthlyEarnings struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	// Month is 1-12.
	Month     int       `json:"month"`
	Year      int       `json:"year"`
	Amount    Money     `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the MonthlyEarnings model.
func (e MonthlyEarnings) TableName() string {
	return "monthly_earnings"
}

// Period returns year*12+month, a monotonic month index used for ordering.
func (e MonthlyEarnings) Period() int {
	return e.Year*12 + e.Month
}

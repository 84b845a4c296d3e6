package models

import "time"

// User represents an account that owns work sessions and earnings records.
type User struct {
	// ID is the unique identifier of the user (UUIDv7).
	ID string `json:"id"`

	// Username is the unique public handle of the user.
	Username string `json:"username"`

	// Email is the unique address used to log in.
	Email string `json:"email"`

	// Password holds the bcrypt hash of the user's password.
	// It is never serialised.
	Password string `json:"-"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Package utils provides general-purpose helper utilities
// used across different parts of the application: typed context keys,
// JSON responses, JWT tokens, password hashing, id generation and the HTTP
// client used by the CLI.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the authenticated user id in the
// context.
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, "0190b6c4-...")
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext retrieves the user identifier from the context.
// ok is false when the value is missing, not a string, or empty.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

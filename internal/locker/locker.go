// Package locker provides per-key mutual exclusion for the session
// lifecycle. The in-process implementation serialises goroutines of one
// server; the Redis implementation extends the guarantee across replicas.
package locker

import (
	"context"
	"errors"
)

// ErrLockTimeout is returned when ctx ends before the lock was acquired.
var ErrLockTimeout = errors.New("lock was not acquired in time")

// Locker grants exclusive access to a key. The returned unlock function
// must be called exactly once.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// UserKey is the lock key guarding the sessions of one user.
func UserKey(userID string) string {
	return "user:" + userID
}

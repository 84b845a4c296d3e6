// Package workers runs the background jobs of the server next to the HTTP
// transport. Every worker lives until its context is cancelled.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is done or the worker
// fails; a cancelled context is a clean stop and yields nil.
type Worker interface {
	Run(ctx context.Context) error
}

package client

import "errors"

var (
	ErrNotLoggedIn      = errors.New(`not logged in, run "tamer login" first`)
	ErrSessionExpired   = errors.New(`token rejected, run "tamer login" again`)
	ErrNoSession        = errors.New("no session in progress")
	ErrPasswordRequired = errors.New("password is required: use --password or --password-stdin")
	ErrIncompleteRange  = errors.New("--from and --to must be given together")
	ErrInvalidDateRange = errors.New("--from must not be after --to")
)

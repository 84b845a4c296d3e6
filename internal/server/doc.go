// Package server runs the HTTP transport until its context is cancelled and
// then shuts it down gracefully.
package server

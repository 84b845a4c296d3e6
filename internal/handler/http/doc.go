// Package http implements the REST transport of the task-tamer server.
//
// It wires chi routes to the service layer and carries the cross-cutting
// middlewares: trace ids, access logging, bearer authentication, gzip
// compression and an optional Redis-backed rate limit. Service errors are
// mapped to status codes in one table (see errors_mapper.go) and written as
// {"error": "..."} bodies.
package http

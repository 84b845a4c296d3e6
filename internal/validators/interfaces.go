// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of incoming requests before the
// service layer acts on them: task names, registration and login payloads,
// earnings periods and date ranges.
//
// Validate accepts optional field names to restrict the check to a subset
// of fields; without them every field of the value is checked.
package validators

import "context"

// Validator validates request values. Unsupported types yield
// ErrUnsupportedType.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

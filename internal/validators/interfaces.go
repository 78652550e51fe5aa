// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds input validation for the notes demo.
//
// A Validator checks a value and may be scoped to a subset of named fields,
// so services can reuse one rule set for create and update requests.
package validators

import "context"

// Validator validates v, optionally only the named fields.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}

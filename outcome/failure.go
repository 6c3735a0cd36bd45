/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package outcome

import (
	"fmt"

	"dirpx.dev/scribe/code"
	"dirpx.dev/scribe/reason"
)

// Failure is the canonical rich failure type for scribe.
//
// It carries:
//   - Code: high-level, normalized outcome code (required);
//   - Reason: optional, more specific machine-friendly cause;
//   - Message: human-oriented description (what went wrong);
//   - Details: arbitrary key/value payload (for logging / HTTP body);
//   - Cause: wrapped underlying error for debugging / unwrapping.
//
// All mutation helpers (WithX) return a shallow copy, so Failure instances
// can be safely shared and modified in a functional style.
type Failure struct {
	// Code is the primary classification of the failure, e.g. "invalid",
	// "not_found", "conflict". Must be a normalized code from scribe/code.
	Code code.Code

	// Reason refines the Code with a machine-usable marker, e.g.
	// "user.email.exists" or "post.author.unknown".
	// May be empty when the Code is descriptive enough.
	Reason reason.Reason

	// Message is a human-readable explanation. This is what should end up
	// in logs or in the "message" field of an HTTP error response.
	Message string

	// Details is an optional, shallow map of extra fields. Use this to expose
	// structured failure data to API clients (ids, counts, field names, etc.).
	// The map is treated as immutable: WithDetail/WithDetails always copy it.
	Details map[string]any

	// Cause holds the wrapped underlying error (if any). This is used for
	// errors.Is / errors.As and for debugging in lower layers.
	Cause error
}

// E is a convenience constructor for Failure.
//
// Usage:
//
//	return outcome.E(code.Conflict, "email is already registered",
//	    outcome.WithReasonOption(reason.UserEmailExists),
//	    outcome.WithDetailOption("email", email),
//	)
//
// It always returns a *new* Failure and applies all provided options in order.
func E(c code.Code, msg string, opts ...Option) *Failure {
	f := &Failure{Code: c, Message: msg}
	for _, opt := range opts {
		f = opt(f)
	}
	return f
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<code>: <message>
//
// or, when Reason is present:
//
//	<code>:<reason>: <message>
//
// This makes the failure both human- and machine-scannable in logs.
func (f *Failure) Error() string {
	if f == nil {
		return "<nil>"
	}
	if f.Reason != "" {
		return fmt.Sprintf("%s:%s: %s", f.Code, f.Reason, f.Message)
	}
	return fmt.Sprintf("%s: %s", f.Code, f.Message)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (f *Failure) Unwrap() error { return f.Cause }

// WithReason returns a shallow copy of f with the given Reason set.
// The original failure is not modified.
func (f *Failure) WithReason(r reason.Reason) *Failure {
	cp := *f
	cp.Reason = r
	return &cp
}

// WithMessage returns a shallow copy of f with a replaced human message.
// Useful when you want to keep the Code/Reason but present the message
// in a different language or context.
func (f *Failure) WithMessage(msg string) *Failure {
	cp := *f
	cp.Message = msg
	return &cp
}

// WithDetail returns a shallow copy of f with one extra key/value in Details.
//
// The method always copies the map to preserve immutability. This prevents
// surprising modifications across goroutines or shared failure values.
func (f *Failure) WithDetail(k string, v any) *Failure {
	cp := *f
	// No details yet — create a new single-entry map.
	if len(cp.Details) == 0 {
		cp.Details = map[string]any{k: v}
		return &cp
	}
	// Copy existing details and add one more.
	m := make(map[string]any, len(cp.Details)+1)
	for k0, v0 := range cp.Details {
		m[k0] = v0
	}
	m[k] = v
	cp.Details = m
	return &cp
}

// WithDetails returns a shallow copy of f with all provided kv merged into Details.
//
// If the Failure already has Details, both maps are copied and merged,
// with kv taking precedence on key conflicts.
func (f *Failure) WithDetails(kv map[string]any) *Failure {
	if len(kv) == 0 {
		return f
	}
	cp := *f
	// No existing details — just copy kv.
	if len(cp.Details) == 0 {
		m := make(map[string]any, len(kv))
		for k, v := range kv {
			m[k] = v
		}
		cp.Details = m
		return &cp
	}
	// Merge existing + new.
	m := make(map[string]any, len(cp.Details)+len(kv))
	for k0, v0 := range cp.Details {
		m[k0] = v0
	}
	for k, v := range kv {
		m[k] = v
	}
	cp.Details = m
	return &cp
}

// WithCause returns a shallow copy of f with the given underlying cause attached.
// If err is nil, the original failure is returned unchanged.
func (f *Failure) WithCause(err error) *Failure {
	if err == nil {
		return f
	}
	cp := *f
	cp.Cause = err
	return &cp
}

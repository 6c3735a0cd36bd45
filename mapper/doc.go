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

// Package mapper provides deterministic, immutable mappings from logical
// outcome codes (dirpx.dev/scribe/code) and optional reasons
// (dirpx.dev/scribe/reason) to transport-level statuses for HTTP and gRPC.
//
// # Overview
//
// In scribe failures are expressed in two parts:
//
//  1. a high-level Code (e.g. code.Conflict, code.Invalid),
//  2. an optional, more specific Reason (e.g. "user.email.exists").
//
// Transport layers (REST handlers, typed procedure handlers) need to turn
// this pair into concrete status codes. Package mapper does that in a way that
// is:
//
//   - immutable — a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable — callers can change library defaults per Code;
//   - prefix-aware — callers can add fine-grained rules for specific reasons;
//   - dual — HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the Code;
//  2. per-Code longest-prefix-match (LPM) on the Reason;
//  3. per-Code default (library or user-adjusted);
//  4. global fallback (500 / codes.Internal).
//
// Prefix rules are segment-aware: reasons are treated as "."-separated segments,
// and "*" matches exactly one segment. For example:
//
//	WithHTTPPrefix(code.Blocked, "user.posts", http.StatusBadRequest)
//	WithHTTPPrefix(code.Invalid, "post.*.unknown", http.StatusBadRequest)
//
// The more specific prefix wins.
//
// # Library defaults
//
// The package ships with defaults for the scribe taxonomy, mapping codes to
// standard net/http constants and grpc/codes values (e.g. code.Invalid -> 400 /
// InvalidArgument, code.Conflict -> 409 / AlreadyExists, code.Blocked -> 400 /
// FailedPrecondition). These can be adjusted at build time.
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(code.Conflict, http.StatusConflict),
//	    mapper.WithHTTPPrefix(code.Blocked, "user.posts", http.StatusBadRequest),
//	)
//	if err != nil {
//	    // invalid prefix, etc.
//	}
//
//	st := m.Status(code.Blocked, reason.UserPostsDependent)
//	// st.HTTP == 400, st.GRPC == codes.FailedPrecondition
//
// # Diagnostics
//
// For debugging and tests, Mapper.Explain returns a human-readable trace of how
// a particular (code, reason) was resolved, including which tier matched and, for
// prefixes, which pattern was used.
//
// This is intended for inspection and logging, not for stable machine parsing.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction, the Mapper
// does not observe further changes to the caller's maps or slices. This makes it
// safe to share a single instance across handlers, goroutines, and requests.
package mapper

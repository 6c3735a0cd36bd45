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

package code

// The closed outcome taxonomy.
//
// These five categories are the ONLY vocabulary the entity rules engine may
// use to describe a failed operation, and the only vocabulary the transport
// adapters translate. Do not add categories here without also teaching both
// transport writers and the mapper defaults about them.
const (
	// Invalid indicates that the request input violates a structural or
	// semantic constraint of the entity: a missing email, a malformed
	// email address, an empty post title, a create without a resolvable
	// author, or a request body that does not decode into the declared
	// input schema.
	// Detected before any store call is attempted.
	//
	// Mapped to HTTP 400 / gRPC InvalidArgument by default.
	Invalid Code = "invalid"

	// NotFound indicates that the addressed entity does not exist: a
	// lookup, update or delete by an id that resolves to no row, or a
	// store-level "no rows" result on a mutation.
	//
	// Mapped to HTTP 404 / gRPC NotFound by default.
	NotFound Code = "not_found"

	// Conflict indicates that the mutation collides with existing state
	// guarded by a store constraint. In this domain that is the user email
	// uniqueness constraint; the store's unique-violation error is the
	// authoritative signal, never the engine's pre-check.
	//
	// Mapped to HTTP 409 / gRPC AlreadyExists by default.
	Conflict Code = "conflict"

	// Blocked indicates that the entity exists and the input is well
	// formed, but relational state forbids the operation: deleting a user
	// that still owns posts. The operation may succeed later once the
	// dependent state is gone.
	//
	// Mapped to HTTP 400 / gRPC FailedPrecondition by default.
	Blocked Code = "blocked"

	// Internal indicates an unexpected server-side failure: an unreachable
	// store, a scan error, anything the taxonomy cannot name. The root
	// cause is attached to the failure for logging and is never exposed to
	// the caller.
	//
	// Mapped to HTTP 500 / gRPC Internal by default.
	Internal Code = "internal"
)

// All lists every code in the taxonomy. Useful for exhaustive tests and for
// validating mapper coverage.
var All = []Code{Invalid, NotFound, Conflict, Blocked, Internal}

// Known reports whether c is part of the closed taxonomy.
func Known(c Code) bool {
	for _, k := range All {
		if c == k {
			return true
		}
	}
	return false
}

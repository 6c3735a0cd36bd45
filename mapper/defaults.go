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

package mapper

import (
	"net/http"

	"dirpx.dev/scribe/code"
	"google.golang.org/grpc/codes"
)

// defaultHTTP defines the built-in HTTP mappings for the outcome taxonomy.
// These are only defaults: callers may override them at the boundary where
// HTTP is actually produced (REST handlers, typed procedure handlers, etc.).
var defaultHTTP = map[code.Code]int{
	// 4xx — the caller can fix the request.
	code.Invalid:  http.StatusBadRequest, // Malformed input, validation errors, unknown references.
	code.NotFound: http.StatusNotFound,   // Target entity does not exist.
	code.Conflict: http.StatusConflict,   // Uniqueness clash — the value is already taken.
	// Blocked maps to 400 rather than 409: the request itself is well-formed,
	// but a referential rule forbids it until the caller removes the dependents.
	code.Blocked: http.StatusBadRequest,

	// 5xx — unexpected server-side failure; never expose internal details.
	code.Internal: http.StatusInternalServerError,
}

// defaultGRPC defines the built-in gRPC mappings for the outcome taxonomy.
// Chosen to align with canonical gRPC status semantics while preserving the
// scribe taxonomy meanings. As with HTTP, callers may override these at the
// transport edge if a different policy is required.
var defaultGRPC = map[code.Code]codes.Code{
	code.Invalid:  codes.InvalidArgument,    // Bad input shape or validation errors.
	code.NotFound: codes.NotFound,           // Entity does not exist (or is not visible).
	code.Conflict: codes.AlreadyExists,      // Create on an already-taken unique value.
	code.Blocked:  codes.FailedPrecondition, // Referential rule forbids the operation right now.
	code.Internal: codes.Internal,           // Unexpected server-side failure.
}

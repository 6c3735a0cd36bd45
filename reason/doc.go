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

// Package reason defines an optional, structured refinement for scribe
// outcome codes.
//
// Where Code answers “what kind of outcome is this?” (invalid, not_found,
// conflict, ...), Reason can answer “which entity / which field / which
// constraint produced it?”, e.g.:
//
//   - "user.email.missing"
//   - "user.posts.dependent"
//   - "store.pg.unique"
//
// Reason is intentionally optional: the zero value ("") is allowed and
// indicates that no further refinement is provided. This lets callers attach
// a reason only when they actually have a meaningful, stable one to report.
package reason

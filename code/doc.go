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

// Package code provides parsing, normalization and validation for scribe
// outcome codes.
//
// A "code" is the top-level, machine-readable category of a failed entity
// operation: "invalid", "not_found", "conflict", "blocked" or "internal".
// Codes are meant to be:
//
//   - short and stable;
//   - lowercased;
//   - underscore-separated (not dash-separated);
//   - suitable for use in JSON payloads and for lookup in the status mapper.
//
// The taxonomy is deliberately closed: every failure the service can report
// falls into exactly one of the categories declared in this package, and
// transport adapters reject anything outside it as an internal error.
//
// IMPORTANT: Empty codes ("") are NOT allowed. Every failure MUST have a
// non-empty code.
package code

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

// Package outcome defines the canonical failure type shared by every layer
// of scribe.
//
// A Failure pairs a taxonomy code (see dirpx.dev/scribe/code) with an
// optional reason (see dirpx.dev/scribe/reason), a human message, structured
// details, and a wrapped cause. Entity rules produce Failures, the store
// classifier produces Failures, and both transport surfaces render the same
// Failure through the same mapper so that REST and the typed procedures can
// never disagree about an outcome.
package outcome

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

// Package service wires the entity rules to the store and exposes the
// operations both transport surfaces share.
//
// Every method runs the same pipeline: evaluate the input with the rules,
// hit the store, classify any store error, sanitize the payload. REST and
// the typed procedures call the exact same methods, so an outcome can never
// differ between surfaces; the only divergence is the stricter create rule
// the procedure surface opts into via CreateStrict.
package service

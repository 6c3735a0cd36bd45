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

// Package rules holds the entity rules for users and posts: input
// validation, patch merging, delete guards, sensitive-field projection, and
// classification of store errors into outcome failures.
//
// Everything here is pure: functions take values in and return values plus
// an optional *outcome.Failure. No I/O happens in this package, which is
// what lets both transport surfaces share one set of decisions.
package rules

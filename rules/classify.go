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

package rules

import (
	"errors"

	"dirpx.dev/scribe/code"
	"dirpx.dev/scribe/outcome"
	"dirpx.dev/scribe/reason"
	"dirpx.dev/scribe/store"
)

// ClassifyStoreError converts a store sentinel into the outcome failure a
// client should see. entity names what was being operated on ("user",
// "post") and only shapes the message.
//
// The foreign-key case assumes the user-delete context: the row could not
// go away because posts still reference it. Post creation has its own
// classifier because the same constraint means something different there.
func ClassifyStoreError(entity string, err error) *outcome.Failure {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, store.ErrNotFound):
		return outcome.E(code.NotFound, entity+" not found",
			outcome.WithReasonOption(reason.StoreNoRows),
		)
	case errors.Is(err, store.ErrUniqueViolation):
		return outcome.E(code.Conflict, "email is already registered",
			outcome.WithReasonOption(reason.UserEmailExists),
		)
	case errors.Is(err, store.ErrForeignKeyViolation):
		return outcome.E(code.Blocked, "user has dependent posts",
			outcome.WithReasonOption(reason.UserPostsDependent),
		)
	default:
		// Never expose the raw error; it travels as the cause for logging.
		return outcome.E(code.Internal, "unexpected error",
			outcome.WithCauseOption(err),
		)
	}
}

// ClassifyCreatePostError is the post-create variant of ClassifyStoreError.
// Here a foreign-key violation means the referenced author does not exist,
// which is the caller's mistake, not a blocked precondition.
func ClassifyCreatePostError(err error) *outcome.Failure {
	if err == nil {
		return nil
	}
	if errors.Is(err, store.ErrForeignKeyViolation) {
		return outcome.E(code.Invalid, "author does not exist",
			outcome.WithReasonOption(reason.PostAuthorUnknown),
		)
	}
	return ClassifyStoreError("post", err)
}

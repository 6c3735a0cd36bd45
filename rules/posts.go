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
	"strings"

	"dirpx.dev/scribe/code"
	"dirpx.dev/scribe/outcome"
	"dirpx.dev/scribe/reason"
	"dirpx.dev/scribe/store"
)

// CreatePostInput is the raw payload for a post create. Content and
// Published are pointers so "absent" and "explicit zero value" stay
// distinguishable; both default when absent.
type CreatePostInput struct {
	Title     string  `json:"title"`
	Content   *string `json:"content"`
	Published *bool   `json:"published"`
	AuthorID  string  `json:"author_id"`
}

// PostPatch carries the fields of a post update. nil means "leave as is".
// The author of a post cannot be changed.
type PostPatch struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Published *bool   `json:"published"`
}

// NormalizedPost is the result of a successful EvaluateCreatePost: all
// defaults applied, every field ready for the insert.
type NormalizedPost struct {
	Title     string
	Content   string
	Published bool
	AuthorID  string
}

// ValidateCreatePost checks the stateless create rules. The author fallback
// needs a store lookup, so it stays with EvaluateCreatePost; callers use
// this first to fail before that lookup happens.
func ValidateCreatePost(in CreatePostInput) *outcome.Failure {
	if strings.TrimSpace(in.Title) == "" {
		return outcome.E(code.Invalid, "title is required",
			outcome.WithReasonOption(reason.PostTitleMissing),
		)
	}
	return nil
}

// ValidatePostPatch checks a patch's syntactic fields without any stored
// state.
func ValidatePostPatch(patch PostPatch) *outcome.Failure {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return outcome.E(code.Invalid, "title is required",
			outcome.WithReasonOption(reason.PostTitleMissing),
		)
	}
	return nil
}

// EvaluateCreatePost validates and normalizes a post create.
//
// Title is required. Content defaults to the empty string and Published to
// false. When no author is given the caller-supplied fallback (the earliest
// registered user) is used; if there is no fallback either, the create is
// rejected.
func EvaluateCreatePost(in CreatePostInput, fallbackAuthorID string) (*NormalizedPost, *outcome.Failure) {
	if f := ValidateCreatePost(in); f != nil {
		return nil, f
	}

	p := &NormalizedPost{Title: strings.TrimSpace(in.Title)}
	if in.Content != nil {
		p.Content = *in.Content
	}
	if in.Published != nil {
		p.Published = *in.Published
	}

	p.AuthorID = strings.TrimSpace(in.AuthorID)
	if p.AuthorID == "" {
		p.AuthorID = fallbackAuthorID
	}
	if p.AuthorID == "" {
		return nil, outcome.E(code.Invalid, "no users available to be set as author",
			outcome.WithReasonOption(reason.PostAuthorMissing),
		)
	}
	return p, nil
}

// EvaluatePostPatch merges a patch into the existing post and revalidates
// the result. It returns a new value; the input post is never modified.
func EvaluatePostPatch(existing *store.Post, patch PostPatch) (*store.Post, *outcome.Failure) {
	if existing == nil {
		return nil, outcome.E(code.NotFound, "post not found",
			outcome.WithReasonOption(reason.StoreNoRows),
		)
	}
	if f := ValidatePostPatch(patch); f != nil {
		return nil, f
	}
	merged := *existing
	merged.Author = nil
	if patch.Title != nil {
		merged.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Content != nil {
		merged.Content = *patch.Content
	}
	if patch.Published != nil {
		merged.Published = *patch.Published
	}
	return &merged, nil
}

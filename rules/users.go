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
	"regexp"
	"strings"

	"dirpx.dev/scribe/code"
	"dirpx.dev/scribe/outcome"
	"dirpx.dev/scribe/reason"
	"dirpx.dev/scribe/store"
)

// emailRe is deliberately loose: one local part, one "@", one domain with a
// dot. Real deliverability is the mail server's problem, not ours.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// MinNameLength is the display-name minimum enforced only on the typed
// procedure surface. The REST surface accepts any name.
const MinNameLength = 3

// CreateUserInput is the raw payload for a user create, before the rules
// have normalized it.
type CreateUserInput struct {
	Email string  `json:"email"`
	Name  *string `json:"name"`
}

// UserPatch carries the fields of a user update. nil means "leave as is".
type UserPatch struct {
	Email *string `json:"email"`
	Name  *string `json:"name"`
}

// EvaluateCreateUser normalizes and validates a user create. On success it
// returns the canonical email (trimmed, lowercased) and the cleaned name.
func EvaluateCreateUser(in CreateUserInput) (email string, name *string, f *outcome.Failure) {
	email, f = normalizeEmail(in.Email)
	if f != nil {
		return "", nil, f
	}
	return email, cleanName(in.Name), nil
}

// EvaluateProcedureCreateUser applies the stricter create rules of the typed
// procedure surface: everything EvaluateCreateUser checks, plus a required
// display name of at least MinNameLength characters.
func EvaluateProcedureCreateUser(in CreateUserInput) (email string, name *string, f *outcome.Failure) {
	email, name, f = EvaluateCreateUser(in)
	if f != nil {
		return "", nil, f
	}
	if name == nil || len(*name) < MinNameLength {
		return "", nil, outcome.E(code.Invalid, "name must be at least 3 characters",
			outcome.WithReasonOption(reason.UserNameShort),
			outcome.WithDetailOption("min_length", MinNameLength),
		)
	}
	return email, name, nil
}

// ValidateUserPatch checks a patch's syntactic fields without any stored
// state, so callers can reject bad input before touching the store.
func ValidateUserPatch(patch UserPatch) *outcome.Failure {
	if patch.Email != nil {
		if _, f := normalizeEmail(*patch.Email); f != nil {
			return f
		}
	}
	return nil
}

// ValidateProcedureUserPatch layers the typed-procedure surface's name rule
// on top of ValidateUserPatch: a name carried by the patch must clean up to
// at least MinNameLength characters.
func ValidateProcedureUserPatch(patch UserPatch) *outcome.Failure {
	if f := ValidateUserPatch(patch); f != nil {
		return f
	}
	if patch.Name != nil {
		if name := cleanName(patch.Name); name == nil || len(*name) < MinNameLength {
			return outcome.E(code.Invalid, "name must be at least 3 characters",
				outcome.WithReasonOption(reason.UserNameShort),
				outcome.WithDetailOption("min_length", MinNameLength),
			)
		}
	}
	return nil
}

// EvaluateUserPatch merges a patch into the existing user and revalidates
// the result. It returns a new value; the input user is never modified.
func EvaluateUserPatch(existing *store.User, patch UserPatch) (*store.User, *outcome.Failure) {
	if existing == nil {
		return nil, outcome.E(code.NotFound, "user not found",
			outcome.WithReasonOption(reason.StoreNoRows),
		)
	}
	merged := *existing
	merged.Posts = nil
	if patch.Email != nil {
		email, f := normalizeEmail(*patch.Email)
		if f != nil {
			return nil, f
		}
		merged.Email = email
	}
	if patch.Name != nil {
		merged.Name = cleanName(patch.Name)
	}
	return &merged, nil
}

// EvaluateDeleteUser guards a user delete: the user must exist and must not
// own any posts. ownedPosts is the caller-supplied post count.
func EvaluateDeleteUser(existing *store.User, ownedPosts int) *outcome.Failure {
	if existing == nil {
		return outcome.E(code.NotFound, "user not found",
			outcome.WithReasonOption(reason.StoreNoRows),
		)
	}
	if ownedPosts > 0 {
		return outcome.E(code.Blocked, "user has dependent posts",
			outcome.WithReasonOption(reason.UserPostsDependent),
			outcome.WithDetailOption("post_count", ownedPosts),
		)
	}
	return nil
}

// SanitizeUser projects a stored user onto the fields that are safe to
// expose. It builds a fresh value field by field, so new store columns stay
// hidden until someone deliberately adds them here. The input is never
// modified and the projection is idempotent.
func SanitizeUser(u store.User) store.User {
	out := store.User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.Posts != nil {
		out.Posts = make([]store.Post, len(u.Posts))
		copy(out.Posts, u.Posts)
	}
	return out
}

// SanitizeUsers applies SanitizeUser to every element of a list.
func SanitizeUsers(users []store.User) []store.User {
	if users == nil {
		return nil
	}
	out := make([]store.User, len(users))
	for i := range users {
		out[i] = SanitizeUser(users[i])
	}
	return out
}

func normalizeEmail(raw string) (string, *outcome.Failure) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", outcome.E(code.Invalid, "email is required",
			outcome.WithReasonOption(reason.UserEmailMissing),
		)
	}
	if !emailRe.MatchString(email) {
		return "", outcome.E(code.Invalid, "email is not a valid address",
			outcome.WithReasonOption(reason.UserEmailMalformed),
			outcome.WithDetailOption("email", email),
		)
	}
	return email, nil
}

// cleanName trims the name and collapses blank input to nil, so "no name"
// has exactly one representation in the store.
func cleanName(name *string) *string {
	if name == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*name)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

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

package service

import (
	"context"
	"errors"

	"dirpx.dev/scribe/outcome"
	"dirpx.dev/scribe/rules"
	"dirpx.dev/scribe/store"
)

// Users implements the user operations shared by both API surfaces.
type Users struct {
	store *store.Store
}

// NewUsers builds the user service on top of the given store.
func NewUsers(s *store.Store) *Users {
	return &Users{store: s}
}

// List returns all users, sanitized. withPosts attaches each user's posts.
func (u *Users) List(ctx context.Context, withPosts bool) ([]store.User, *outcome.Failure) {
	users, err := u.store.ListUsers(ctx, withPosts)
	if err != nil {
		return nil, rules.ClassifyStoreError("user", err)
	}
	return rules.SanitizeUsers(users), nil
}

// Get returns one user by id, sanitized.
func (u *Users) Get(ctx context.Context, id string, withPosts bool) (*store.User, *outcome.Failure) {
	usr, err := u.store.GetUser(ctx, id, withPosts)
	if err != nil {
		return nil, rules.ClassifyStoreError("user", err)
	}
	out := rules.SanitizeUser(*usr)
	return &out, nil
}

// Create validates the input with the base rules and inserts the user.
func (u *Users) Create(ctx context.Context, in rules.CreateUserInput) (*store.User, *outcome.Failure) {
	email, name, f := rules.EvaluateCreateUser(in)
	if f != nil {
		return nil, f
	}
	return u.insert(ctx, email, name)
}

// CreateStrict is Create with the typed-procedure surface's extra rule: a
// display name of at least rules.MinNameLength characters is required.
func (u *Users) CreateStrict(ctx context.Context, in rules.CreateUserInput) (*store.User, *outcome.Failure) {
	email, name, f := rules.EvaluateProcedureCreateUser(in)
	if f != nil {
		return nil, f
	}
	return u.insert(ctx, email, name)
}

func (u *Users) insert(ctx context.Context, email string, name *string) (*store.User, *outcome.Failure) {
	usr, err := u.store.CreateUser(ctx, email, name)
	if err != nil {
		return nil, rules.ClassifyStoreError("user", err)
	}
	out := rules.SanitizeUser(*usr)
	return &out, nil
}

// Update merges the patch into the stored user, revalidates, and persists.
// Syntactic patch problems are rejected before the store is consulted.
func (u *Users) Update(ctx context.Context, id string, patch rules.UserPatch) (*store.User, *outcome.Failure) {
	if f := rules.ValidateUserPatch(patch); f != nil {
		return nil, f
	}
	existing, err := u.store.GetUser(ctx, id, false)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, rules.ClassifyStoreError("user", err)
	}
	merged, f := rules.EvaluateUserPatch(existing, patch)
	if f != nil {
		return nil, f
	}
	updated, err := u.store.UpdateUser(ctx, merged)
	if err != nil {
		return nil, rules.ClassifyStoreError("user", err)
	}
	out := rules.SanitizeUser(*updated)
	return &out, nil
}

// UpdateStrict is Update with the typed-procedure surface's extra rule: a
// name carried by the patch must be at least rules.MinNameLength characters.
func (u *Users) UpdateStrict(ctx context.Context, id string, patch rules.UserPatch) (*store.User, *outcome.Failure) {
	if f := rules.ValidateProcedureUserPatch(patch); f != nil {
		return nil, f
	}
	return u.Update(ctx, id, patch)
}

// Delete removes a user unless posts still reference it. The rules guard
// checks the count first for a precise failure; the foreign key backs it up
// against races.
func (u *Users) Delete(ctx context.Context, id string) *outcome.Failure {
	existing, err := u.store.GetUser(ctx, id, false)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return rules.ClassifyStoreError("user", err)
	}
	var owned int
	if existing != nil {
		owned, err = u.store.CountPostsByAuthor(ctx, existing.ID)
		if err != nil {
			return rules.ClassifyStoreError("user", err)
		}
	}
	if f := rules.EvaluateDeleteUser(existing, owned); f != nil {
		return f
	}
	if err := u.store.DeleteUser(ctx, id); err != nil {
		return rules.ClassifyStoreError("user", err)
	}
	return nil
}

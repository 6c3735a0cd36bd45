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
	"strings"

	"dirpx.dev/scribe/outcome"
	"dirpx.dev/scribe/rules"
	"dirpx.dev/scribe/store"
)

// Posts implements the post operations shared by both API surfaces.
type Posts struct {
	store *store.Store
}

// NewPosts builds the post service on top of the given store.
func NewPosts(s *store.Store) *Posts {
	return &Posts{store: s}
}

// List returns all posts, newest first, each with its author.
func (p *Posts) List(ctx context.Context) ([]store.Post, *outcome.Failure) {
	posts, err := p.store.ListPosts(ctx)
	if err != nil {
		return nil, rules.ClassifyStoreError("post", err)
	}
	return posts, nil
}

// Get returns one post by id with its author.
func (p *Posts) Get(ctx context.Context, id string) (*store.Post, *outcome.Failure) {
	post, err := p.store.GetPost(ctx, id)
	if err != nil {
		return nil, rules.ClassifyStoreError("post", err)
	}
	return post, nil
}

// Create validates the input and inserts the post. When no author is given
// the earliest registered user becomes the author; with no users at all the
// create is rejected by the rules. The stateless checks run before the
// fallback lookup so bad input never reaches the store.
func (p *Posts) Create(ctx context.Context, in rules.CreatePostInput) (*store.Post, *outcome.Failure) {
	if f := rules.ValidateCreatePost(in); f != nil {
		return nil, f
	}
	var fallback string
	if strings.TrimSpace(in.AuthorID) == "" {
		id, err := p.store.FirstUserID(ctx)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, rules.ClassifyStoreError("post", err)
		}
		fallback = id
	}
	np, f := rules.EvaluateCreatePost(in, fallback)
	if f != nil {
		return nil, f
	}
	post, err := p.store.CreatePost(ctx, np.Title, np.Content, np.Published, np.AuthorID)
	if err != nil {
		return nil, rules.ClassifyCreatePostError(err)
	}
	return post, nil
}

// Update merges the patch into the stored post, revalidates, and persists.
// Syntactic patch problems are rejected before the store is consulted.
func (p *Posts) Update(ctx context.Context, id string, patch rules.PostPatch) (*store.Post, *outcome.Failure) {
	if f := rules.ValidatePostPatch(patch); f != nil {
		return nil, f
	}
	existing, err := p.store.GetPost(ctx, id)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, rules.ClassifyStoreError("post", err)
	}
	merged, f := rules.EvaluatePostPatch(existing, patch)
	if f != nil {
		return nil, f
	}
	updated, err := p.store.UpdatePost(ctx, merged)
	if err != nil {
		return nil, rules.ClassifyStoreError("post", err)
	}
	return updated, nil
}

// Delete removes a post. Unlike users, nothing references posts, so there
// is no guard beyond existence.
func (p *Posts) Delete(ctx context.Context, id string) *outcome.Failure {
	if err := p.store.DeletePost(ctx, id); err != nil {
		return rules.ClassifyStoreError("post", err)
	}
	return nil
}

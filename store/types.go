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

package store

import "time"

// User is a stored account row. Name is a pointer because the column is
// nullable: nil means the user never provided a display name, which is
// different from an empty string.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      *string   `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Posts is populated only by queries that explicitly include the
	// user's posts; otherwise it is nil.
	Posts []Post `json:"posts,omitempty"`
}

// Post is a stored post row. AuthorID always references an existing user;
// the schema has no cascade, so the referenced user cannot be deleted while
// the post exists.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Published bool      `json:"published"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Author is populated by queries that join the owning user.
	Author *Author `json:"author,omitempty"`
}

// Author is the embedded projection of a post's owner. It intentionally
// carries only fields that are safe to show next to a post.
type Author struct {
	ID    string  `json:"id"`
	Name  *string `json:"name"`
	Email string  `json:"email"`
}

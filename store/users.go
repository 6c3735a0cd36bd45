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

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateUser inserts a new user row and returns it. The id and timestamps
// are assigned here; a duplicate email surfaces as ErrUniqueViolation.
func (s *Store) CreateUser(ctx context.Context, email string, name *string) (*User, error) {
	now := time.Now().UTC()
	u := &User{
		ID:        uuid.New().String(),
		Email:     email,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, email, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`, u.ID, u.Email, u.Name, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return nil, wrap("create user", err)
	}
	return u, nil
}

// GetUser fetches one user by id. When withPosts is true the user's posts
// are loaded as well, newest first.
func (s *Store) GetUser(ctx context.Context, id string, withPosts bool) (*User, error) {
	u := &User{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, name, created_at, updated_at
		FROM users
		WHERE id = $1
	`, id).Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, wrap("get user", err)
	}
	if withPosts {
		posts, err := s.PostsByAuthor(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		u.Posts = posts
	}
	return u, nil
}

// GetUserByEmail fetches one user by email.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	u := &User{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, name, created_at, updated_at
		FROM users
		WHERE email = $1
	`, email).Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, wrap("get user by email", err)
	}
	return u, nil
}

// ListUsers returns all users ordered by creation time. When withPosts is
// true each user's posts are attached with a single extra query rather than
// one query per user.
func (s *Store) ListUsers(ctx context.Context, withPosts bool) ([]User, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, email, name, created_at, updated_at
		FROM users
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, wrap("list users", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("list users", err)
	}

	if !withPosts || len(users) == 0 {
		return users, nil
	}

	// Bucket posts by author in one pass.
	postRows, err := s.db.QueryContext(ctx, `
		SELECT id, title, content, published, author_id, created_at, updated_at
		FROM posts
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, wrap("list users posts", err)
	}
	defer postRows.Close()

	byAuthor := make(map[string][]Post, len(users))
	for postRows.Next() {
		var p Post
		if err := postRows.Scan(&p.ID, &p.Title, &p.Content, &p.Published, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		byAuthor[p.AuthorID] = append(byAuthor[p.AuthorID], p)
	}
	if err := postRows.Err(); err != nil {
		return nil, wrap("list users posts", err)
	}
	for i := range users {
		users[i].Posts = byAuthor[users[i].ID]
	}
	return users, nil
}

// UpdateUser writes the already-merged row back. The rules layer is
// responsible for producing the merged values; the store only persists them.
func (s *Store) UpdateUser(ctx context.Context, u *User) (*User, error) {
	u.UpdatedAt = time.Now().UTC()
	res, err := s.db.ExecContext(ctx, `
		UPDATE users
		SET email = $1, name = $2, updated_at = $3
		WHERE id = $4
	`, u.Email, u.Name, u.UpdatedAt, u.ID)
	if err != nil {
		return nil, wrap("update user", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, wrap("update user", err)
	}
	if n == 0 {
		return nil, wrap("update user", ErrNotFound)
	}
	return u, nil
}

// DeleteUser removes the user row. A user that still owns posts trips the
// foreign key and surfaces as ErrForeignKeyViolation.
func (s *Store) DeleteUser(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return wrap("delete user", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return wrap("delete user", err)
	}
	if n == 0 {
		return wrap("delete user", ErrNotFound)
	}
	return nil
}

// CountPostsByAuthor returns how many posts the given user owns. The delete
// guard only needs existence, but the count feeds the failure details.
func (s *Store) CountPostsByAuthor(ctx context.Context, authorID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM posts WHERE author_id = $1
	`, authorID).Scan(&n)
	if err != nil {
		return 0, wrap("count posts by author", err)
	}
	return n, nil
}

// FirstUserID returns the id of the earliest-created user, used as the
// implicit author when a post is created without one. Returns ErrNotFound
// when no users exist at all.
func (s *Store) FirstUserID(ctx context.Context) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx, `
		SELECT id FROM users ORDER BY created_at ASC LIMIT 1
	`).Scan(&id)
	if err != nil {
		return "", wrap("first user", err)
	}
	return id, nil
}

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

// CreatePost inserts a new post row and returns it with the author joined.
// An unknown author trips the foreign key and surfaces as
// ErrForeignKeyViolation.
func (s *Store) CreatePost(ctx context.Context, title, content string, published bool, authorID string) (*Post, error) {
	now := time.Now().UTC()
	p := &Post{
		ID:        uuid.New().String(),
		Title:     title,
		Content:   content,
		Published: published,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO posts (id, title, content, published, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, p.ID, p.Title, p.Content, p.Published, p.AuthorID, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return nil, wrap("create post", err)
	}
	return s.GetPost(ctx, p.ID)
}

// GetPost fetches one post by id with its author joined.
func (s *Store) GetPost(ctx context.Context, id string) (*Post, error) {
	p := &Post{Author: &Author{}}
	err := s.db.QueryRowContext(ctx, `
		SELECT p.id, p.title, p.content, p.published, p.author_id, p.created_at, p.updated_at,
		       u.id, u.name, u.email
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1
	`, id).Scan(
		&p.ID, &p.Title, &p.Content, &p.Published, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt,
		&p.Author.ID, &p.Author.Name, &p.Author.Email,
	)
	if err != nil {
		return nil, wrap("get post", err)
	}
	return p, nil
}

// ListPosts returns all posts newest first, each with its author joined.
func (s *Store) ListPosts(ctx context.Context) ([]Post, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.title, p.content, p.published, p.author_id, p.created_at, p.updated_at,
		       u.id, u.name, u.email
		FROM posts p
		JOIN users u ON u.id = p.author_id
		ORDER BY p.created_at DESC
	`)
	if err != nil {
		return nil, wrap("list posts", err)
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		p := Post{Author: &Author{}}
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Content, &p.Published, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt,
			&p.Author.ID, &p.Author.Name, &p.Author.Email,
		); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("list posts", err)
	}
	return posts, nil
}

// PostsByAuthor returns the posts owned by one user, newest first, without
// the author joined (the caller already has the user).
func (s *Store) PostsByAuthor(ctx context.Context, authorID string) ([]Post, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, content, published, author_id, created_at, updated_at
		FROM posts
		WHERE author_id = $1
		ORDER BY created_at DESC
	`, authorID)
	if err != nil {
		return nil, wrap("posts by author", err)
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		var p Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.Published, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("posts by author", err)
	}
	return posts, nil
}

// UpdatePost writes the already-merged row back and returns it with the
// author joined.
func (s *Store) UpdatePost(ctx context.Context, p *Post) (*Post, error) {
	p.UpdatedAt = time.Now().UTC()
	res, err := s.db.ExecContext(ctx, `
		UPDATE posts
		SET title = $1, content = $2, published = $3, updated_at = $4
		WHERE id = $5
	`, p.Title, p.Content, p.Published, p.UpdatedAt, p.ID)
	if err != nil {
		return nil, wrap("update post", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, wrap("update post", err)
	}
	if n == 0 {
		return nil, wrap("update post", ErrNotFound)
	}
	return s.GetPost(ctx, p.ID)
}

// DeletePost removes the post row.
func (s *Store) DeletePost(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return wrap("delete post", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return wrap("delete post", err)
	}
	if n == 0 {
		return wrap("delete post", ErrNotFound)
	}
	return nil
}

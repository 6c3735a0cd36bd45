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
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// Sentinel errors exposed by the store.
//
// Callers never see raw driver errors: every method routes failures through
// wrap so that the rules layer can classify them with errors.Is alone.
var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("store: not found")

	// ErrUniqueViolation is returned when a write collides with a unique
	// constraint (duplicate email).
	ErrUniqueViolation = errors.New("store: unique violation")

	// ErrForeignKeyViolation is returned when a write breaks a foreign key
	// (deleting a user that still owns posts, or creating a post with an
	// unknown author).
	ErrForeignKeyViolation = errors.New("store: foreign key violation")
)

// Postgres error codes we classify. See https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// wrap converts driver-level errors into store sentinels, annotated with the
// failing operation. nil passes through untouched.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w", op, ErrUniqueViolation)
		case pgForeignKeyViolation:
			return fmt.Errorf("%s: %w", op, ErrForeignKeyViolation)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"

	"dirpx.dev/scribe/code"
	"dirpx.dev/scribe/reason"
	"dirpx.dev/scribe/rules"
	"dirpx.dev/scribe/store"
)

func setupTestDB(t *testing.T) (*store.Store, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	return store.New(db), mock, func() { _ = db.Close() }
}

func strPtr(s string) *string { return &s }

func userRows(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "email", "name", "created_at", "updated_at"}).
		AddRow("u-1", "alice@example.com", "Alice", now, now)
}

func TestUsers_Create_RejectsBeforeStore(t *testing.T) {
	s, mock, cleanup := setupTestDB(t)
	defer cleanup()

	// No expectations set: an invalid email must never reach the database.
	users := NewUsers(s)
	_, f := users.Create(context.Background(), rules.CreateUserInput{Email: "nope"})
	if f == nil || f.Reason != reason.UserEmailMalformed {
		t.Fatalf("want user.email.malformed, got %v", f)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("store was touched: %v", err)
	}
}

func TestUsers_Create_DuplicateEmailConflicts(t *testing.T) {
	s, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&pq.Error{Code: "23505"})

	users := NewUsers(s)
	_, f := users.Create(context.Background(), rules.CreateUserInput{Email: "alice@example.com"})
	if f == nil || f.Code != code.Conflict || f.Reason != reason.UserEmailExists {
		t.Fatalf("want conflict:user.email.exists, got %v", f)
	}
}

func TestUsers_Delete_BlockedByOwnedPosts(t *testing.T) {
	s, mock, cleanup := setupTestDB(t)
	defer cleanup()

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT id, email, name, created_at, updated_at FROM users").
		WithArgs("u-1").
		WillReturnRows(userRows(now))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM posts`).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	users := NewUsers(s)
	f := users.Delete(context.Background(), "u-1")
	if f == nil || f.Code != code.Blocked || f.Reason != reason.UserPostsDependent {
		t.Fatalf("want blocked:user.posts.dependent, got %v", f)
	}
	if f.Details["post_count"] != 2 {
		t.Fatalf("post_count = %v", f.Details["post_count"])
	}
	// The DELETE must never have run.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestUsers_Delete_Succeeds(t *testing.T) {
	s, mock, cleanup := setupTestDB(t)
	defer cleanup()

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT id, email, name, created_at, updated_at FROM users").
		WithArgs("u-1").
		WillReturnRows(userRows(now))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM posts`).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("DELETE FROM users").
		WithArgs("u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	users := NewUsers(s)
	if f := users.Delete(context.Background(), "u-1"); f != nil {
		t.Fatalf("unexpected failure: %v", f)
	}
}

func TestUsers_Update_MissingUser(t *testing.T) {
	s, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT id, email, name, created_at, updated_at FROM users").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	users := NewUsers(s)
	_, f := users.Update(context.Background(), "missing", rules.UserPatch{Email: strPtr("a@b.co")})
	if f == nil || f.Code != code.NotFound {
		t.Fatalf("want not_found, got %v", f)
	}
}

func TestUsers_Update_MalformedEmailSkipsStore(t *testing.T) {
	s, mock, cleanup := setupTestDB(t)
	defer cleanup()

	users := NewUsers(s)
	_, f := users.Update(context.Background(), "u-1", rules.UserPatch{Email: strPtr("not-an-email")})
	if f == nil || f.Code != code.Invalid || f.Reason != reason.UserEmailMalformed {
		t.Fatalf("want invalid:user.email.malformed, got %v", f)
	}
	// No expectations were registered: the fetch must not have run.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("store touched before validation: %v", err)
	}
}

func TestUsers_UpdateStrict_ShortName(t *testing.T) {
	s, mock, cleanup := setupTestDB(t)
	defer cleanup()

	users := NewUsers(s)
	_, f := users.UpdateStrict(context.Background(), "u-1", rules.UserPatch{Name: strPtr("Al")})
	if f == nil || f.Code != code.Invalid || f.Reason != reason.UserNameShort {
		t.Fatalf("want invalid:user.name.short, got %v", f)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("store touched before validation: %v", err)
	}
}

func TestPosts_Create_FallbackAuthor(t *testing.T) {
	s, mock, cleanup := setupTestDB(t)
	defer cleanup()

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT id FROM users ORDER BY created_at ASC LIMIT 1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("u-1"))
	mock.ExpectExec("INSERT INTO posts").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM posts p").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "content", "published", "author_id", "created_at", "updated_at",
			"u_id", "u_name", "u_email",
		}).AddRow("p-1", "Hello", "", false, "u-1", now, now, "u-1", "Alice", "alice@example.com"))

	posts := NewPosts(s)
	p, f := posts.Create(context.Background(), rules.CreatePostInput{Title: "Hello"})
	if f != nil {
		t.Fatalf("unexpected failure: %v", f)
	}
	if p.AuthorID != "u-1" {
		t.Fatalf("fallback author not used: %q", p.AuthorID)
	}
}

func TestPosts_Create_WhitespaceAuthorFallsBack(t *testing.T) {
	s, mock, cleanup := setupTestDB(t)
	defer cleanup()

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT id FROM users ORDER BY created_at ASC LIMIT 1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("u-1"))
	mock.ExpectExec("INSERT INTO posts").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM posts p").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "content", "published", "author_id", "created_at", "updated_at",
			"u_id", "u_name", "u_email",
		}).AddRow("p-1", "Hello", "", false, "u-1", now, now, "u-1", "Alice", "alice@example.com"))

	posts := NewPosts(s)
	p, f := posts.Create(context.Background(), rules.CreatePostInput{Title: "Hello", AuthorID: "   "})
	if f != nil {
		t.Fatalf("unexpected failure: %v", f)
	}
	if p.AuthorID != "u-1" {
		t.Fatalf("fallback author not used: %q", p.AuthorID)
	}
}

func TestPosts_Create_BlankTitleSkipsStore(t *testing.T) {
	s, mock, cleanup := setupTestDB(t)
	defer cleanup()

	posts := NewPosts(s)
	_, f := posts.Create(context.Background(), rules.CreatePostInput{Title: "  "})
	if f == nil || f.Reason != reason.PostTitleMissing {
		t.Fatalf("want post.title.missing, got %v", f)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("store touched before validation: %v", err)
	}
}

func TestPosts_Create_NoUsersAtAll(t *testing.T) {
	s, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT id FROM users ORDER BY created_at ASC LIMIT 1").
		WillReturnError(sql.ErrNoRows)

	posts := NewPosts(s)
	_, f := posts.Create(context.Background(), rules.CreatePostInput{Title: "Hello"})
	if f == nil || f.Reason != reason.PostAuthorMissing {
		t.Fatalf("want post.author.missing, got %v", f)
	}
}

func TestPosts_Create_UnknownExplicitAuthor(t *testing.T) {
	s, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO posts").
		WillReturnError(&pq.Error{Code: "23503"})

	posts := NewPosts(s)
	_, f := posts.Create(context.Background(), rules.CreatePostInput{Title: "Hello", AuthorID: "ghost"})
	if f == nil || f.Code != code.Invalid || f.Reason != reason.PostAuthorUnknown {
		t.Fatalf("want invalid:post.author.unknown, got %v", f)
	}
}

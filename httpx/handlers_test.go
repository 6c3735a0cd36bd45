package httpx

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/scribe/mapper"
	"dirpx.dev/scribe/service"
	"dirpx.dev/scribe/store"
)

var (
	userCols   = []string{"id", "email", "name", "created_at", "updated_at"}
	sampleTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
)

// errorBody mirrors the JSON shape of a mapped failure.
type errorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Reason  string         `json:"reason"`
	Details map[string]any `json:"details"`
}

func newTestServer(t *testing.T, opts ...func() (*sql.DB, sqlmock.Sqlmock, error)) (http.Handler, sqlmock.Sqlmock) {
	t.Helper()
	open := func() (*sql.DB, sqlmock.Sqlmock, error) { return sqlmock.New() }
	if len(opts) > 0 {
		open = opts[0]
	}
	db, mock, err := open()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	st := store.New(db)
	m, err := mapper.New()
	require.NoError(t, err)

	srv := NewServer(service.NewUsers(st), service.NewPosts(st), st, m)
	return srv.Router(nil), mock
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreateUser(t *testing.T) {
	h, mock := newTestServer(t)
	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(1, 1))

	rec := doJSON(t, h, http.MethodPost, "/users", `{"email":"  Ada@Example.COM ","name":"Ada"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var u store.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &u))
	assert.Equal(t, "ada@example.com", u.Email)
	assert.NotEmpty(t, u.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_MalformedEmail(t *testing.T) {
	h, mock := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/users", `{"email":"not-an-email"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "invalid", body.Code)
	assert.Equal(t, "user.email.malformed", body.Reason)
	// The store must never be touched for a payload the rules reject.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	h, mock := newTestServer(t)
	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&pq.Error{Code: "23505"})

	rec := doJSON(t, h, http.MethodPost, "/users", `{"email":"ada@example.com"}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "conflict", body.Code)
	assert.Equal(t, "user.email.exists", body.Reason)
}

func TestCreateUser_MalformedBody(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/users", `{"email":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "invalid", body.Code)
	assert.Equal(t, "request.body.malformed", body.Reason)
}

func TestGetUser_NotFound(t *testing.T) {
	h, mock := newTestServer(t)
	mock.ExpectQuery("SELECT id, email, name, created_at, updated_at FROM users").
		WillReturnError(sql.ErrNoRows)

	rec := doJSON(t, h, http.MethodGet, "/users/ghost", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "not_found", body.Code)
	assert.Equal(t, "store.pg.no_rows", body.Reason)
}

func TestDeleteUser_BlockedByPosts(t *testing.T) {
	h, mock := newTestServer(t)
	mock.ExpectQuery("SELECT id, email, name, created_at, updated_at FROM users").
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow("u1", "ada@example.com", nil, sampleTime, sampleTime))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM posts`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	rec := doJSON(t, h, http.MethodDelete, "/users/u1", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "blocked", body.Code)
	assert.Equal(t, "user.posts.dependent", body.Reason)
	assert.Equal(t, float64(2), body.Details["post_count"])
	// Delete must not reach the store when the guard trips.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUser(t *testing.T) {
	h, mock := newTestServer(t)
	mock.ExpectQuery("SELECT id, email, name, created_at, updated_at FROM users").
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow("u1", "ada@example.com", nil, sampleTime, sampleTime))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM posts`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("DELETE FROM users").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rec := doJSON(t, h, http.MethodDelete, "/users/u1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListUsers_InternalHidesCause(t *testing.T) {
	h, mock := newTestServer(t)
	mock.ExpectQuery("SELECT id, email, name, created_at, updated_at FROM users").
		WillReturnError(errors.New("connection reset by peer"))

	rec := doJSON(t, h, http.MethodGet, "/users", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "internal", body.Code)
	assert.Equal(t, "unexpected error", body.Message)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestCreatePost_UnknownAuthor(t *testing.T) {
	h, mock := newTestServer(t)
	mock.ExpectExec("INSERT INTO posts").
		WillReturnError(&pq.Error{Code: "23503"})

	rec := doJSON(t, h, http.MethodPost, "/posts", `{"title":"Hello","author_id":"ghost"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "invalid", body.Code)
	assert.Equal(t, "post.author.unknown", body.Reason)
}

func TestCreatePost_TitleMissing(t *testing.T) {
	h, mock := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/posts", `{"title":"  ","author_id":"u1"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "invalid", body.Code)
	assert.Equal(t, "post.title.missing", body.Reason)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUser_MalformedEmailPatch(t *testing.T) {
	h, mock := newTestServer(t)

	rec := doJSON(t, h, http.MethodPut, "/users/u1", `{"email":"not-an-email"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "invalid", body.Code)
	assert.Equal(t, "user.email.malformed", body.Reason)
	// No expectations registered: a bad patch must be rejected before the
	// user is even fetched.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUser_NotFound(t *testing.T) {
	h, mock := newTestServer(t)
	mock.ExpectQuery("SELECT id, email, name, created_at, updated_at FROM users").
		WillReturnError(sql.ErrNoRows)

	rec := doJSON(t, h, http.MethodPut, "/users/ghost", `{"name":"Ada"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "not_found", body.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestLifecycle drives one user and one post through the whole flow:
// create, duplicate rejection, implicit-author post create, blocked user
// delete, post delete, and finally the successful user delete.
func TestLifecycle(t *testing.T) {
	h, mock := newTestServer(t)
	postCols := []string{
		"p.id", "p.title", "p.content", "p.published", "p.author_id",
		"p.created_at", "p.updated_at", "u.id", "u.name", "u.email",
	}

	// Create the user.
	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(1, 1))
	rec := doJSON(t, h, http.MethodPost, "/users", `{"email":"ada@example.com","name":"Ada"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var ada store.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ada))

	// The same email again must conflict.
	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&pq.Error{Code: "23505"})
	rec = doJSON(t, h, http.MethodPost, "/users", `{"email":"ada@example.com"}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	// A post without an author falls back to the earliest user.
	mock.ExpectQuery("SELECT id FROM users ORDER BY created_at ASC LIMIT 1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(ada.ID))
	mock.ExpectExec("INSERT INTO posts").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("FROM posts p").
		WillReturnRows(sqlmock.NewRows(postCols).
			AddRow("p1", "First", "", false, ada.ID, sampleTime, sampleTime,
				ada.ID, "Ada", "ada@example.com"))
	rec = doJSON(t, h, http.MethodPost, "/posts", `{"title":"First"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var post store.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	assert.Equal(t, ada.ID, post.AuthorID)

	// The user cannot be deleted while the post exists.
	mock.ExpectQuery("SELECT id, email, name, created_at, updated_at FROM users").
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(ada.ID, "ada@example.com", "Ada", sampleTime, sampleTime))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM posts`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	rec = doJSON(t, h, http.MethodDelete, "/users/"+ada.ID, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "blocked", decodeError(t, rec).Code)

	// Removing the post unblocks the user.
	mock.ExpectExec("DELETE FROM posts").
		WillReturnResult(sqlmock.NewResult(0, 1))
	rec = doJSON(t, h, http.MethodDelete, "/posts/"+post.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	mock.ExpectQuery("SELECT id, email, name, created_at, updated_at FROM users").
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(ada.ID, "ada@example.com", "Ada", sampleTime, sampleTime))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM posts`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("DELETE FROM users").
		WillReturnResult(sqlmock.NewResult(0, 1))
	rec = doJSON(t, h, http.MethodDelete, "/users/"+ada.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealth(t *testing.T) {
	h, mock := newTestServer(t, func() (*sql.DB, sqlmock.Sqlmock, error) {
		return sqlmock.New(sqlmock.MonitorPingsOption(true))
	})
	mock.ExpectPing()

	rec := doJSON(t, h, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

package apperr_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/milibrary/milibrary-api/internal/api/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respond(t *testing.T, err error) (int, apperr.Problem) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/books/1", nil)
	req.Header.Set("X-Request-ID", "rid-1")
	rec := httptest.NewRecorder()

	apperr.Respond(rec, req, err)

	require.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	var p apperr.Problem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	return rec.Code, p
}

func TestRespond_TypedKinds(t *testing.T) {
	cases := []struct {
		err    error
		status int
		detail string
	}{
		{apperr.Validation("limit must be between 1 and 100"), http.StatusUnprocessableEntity, "limit must be between 1 and 100"},
		{apperr.Conflict("Book already exists"), http.StatusConflict, "Book already exists"},
		{apperr.NotFound("Book not found"), http.StatusNotFound, "Book not found"},
		{fmt.Errorf("wrapped: %w", apperr.NotFound("Book not found")), http.StatusNotFound, "Book not found"},
	}
	for _, tc := range cases {
		code, p := respond(t, tc.err)
		assert.Equal(t, tc.status, code)
		assert.Equal(t, tc.status, p.Status)
		assert.Equal(t, tc.detail, p.Detail)
		assert.Equal(t, "/api/books/1", p.Instance)
		assert.Equal(t, "rid-1", p.RequestID)
	}
}

func TestRespond_HidesInternalCause(t *testing.T) {
	cause := errors.New(`pq: relation "books" does not exist`)

	code, p := respond(t, apperr.Internal("Failed to fetch book", cause))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Failed to fetch book", p.Detail)

	code, p = respond(t, cause)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.NotContains(t, p.Detail, "relation")
}

func TestFromPG(t *testing.T) {
	e, ok := apperr.FromPG(&pgconn.PgError{Code: "23505", ConstraintName: "books_google_books_id_key"})
	require.True(t, ok)
	assert.Equal(t, apperr.KindConflict, e.Kind)

	e, ok = apperr.FromPG(&pgconn.PgError{Code: "23502", ColumnName: "title"})
	require.True(t, ok)
	assert.Equal(t, apperr.KindValidation, e.Kind)
	assert.Equal(t, "title is required", e.Message)

	e, ok = apperr.FromPG(&pgconn.PgError{Code: "57P01", Message: "terminating connection"})
	require.True(t, ok)
	assert.Equal(t, apperr.KindInternal, e.Kind)
	assert.NotContains(t, e.Message, "terminating")

	_, ok = apperr.FromPG(errors.New("plain"))
	assert.False(t, ok)
}

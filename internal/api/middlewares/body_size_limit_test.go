package middlewares_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	mw "github.com/milibrary/milibrary-api/internal/api/middlewares"
)

func readAllHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := io.ReadAll(r.Body); err != nil {
		http.Error(w, "body too large", http.StatusRequestEntityTooLarge)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func TestBodySizeLimit_AcceptsSmallBodies(t *testing.T) {
	wrapped := mw.BodySizeLimit(64)(http.HandlerFunc(readAllHandler))

	req := httptest.NewRequest("POST", "/api/books", bytes.NewReader([]byte(`{"title":"Dune"}`)))
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", rec.Code)
	}
}

func TestBodySizeLimit_RejectsLargeBodies(t *testing.T) {
	wrapped := mw.BodySizeLimit(64)(http.HandlerFunc(readAllHandler))

	req := httptest.NewRequest("POST", "/api/books", bytes.NewReader(bytes.Repeat([]byte("a"), 65)))
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("Expected 413, got %d", rec.Code)
	}
}

func TestBodySizeLimit_IgnoresGet(t *testing.T) {
	wrapped := mw.BodySizeLimit(1)(http.HandlerFunc(readAllHandler))

	req := httptest.NewRequest("GET", "/api/books", bytes.NewReader([]byte("ignored body")))
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", rec.Code)
	}
}

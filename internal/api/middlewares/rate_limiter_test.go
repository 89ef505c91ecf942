package middlewares_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	mw "github.com/milibrary/milibrary-api/internal/api/middlewares"
	"github.com/redis/go-redis/v9"
)

// fakeScripter answers every script call with a fixed reply.
type fakeScripter struct {
	reply []any
	err   error
	keys  []string
}

func (f *fakeScripter) result(keys []string) *redis.Cmd {
	f.keys = append(f.keys, keys...)
	return redis.NewCmdResult(f.reply, f.err)
}

func (f *fakeScripter) Eval(_ context.Context, _ string, keys []string, _ ...any) *redis.Cmd {
	return f.result(keys)
}
func (f *fakeScripter) EvalSha(_ context.Context, _ string, keys []string, _ ...any) *redis.Cmd {
	return f.result(keys)
}
func (f *fakeScripter) EvalRO(_ context.Context, _ string, keys []string, _ ...any) *redis.Cmd {
	return f.result(keys)
}
func (f *fakeScripter) EvalShaRO(_ context.Context, _ string, keys []string, _ ...any) *redis.Cmd {
	return f.result(keys)
}
func (f *fakeScripter) ScriptExists(context.Context, ...string) *redis.BoolSliceCmd {
	return redis.NewBoolSliceResult([]bool{true}, nil)
}
func (f *fakeScripter) ScriptLoad(context.Context, string) *redis.StringCmd {
	return redis.NewStringResult("sha", nil)
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
}

func TestTokenBucket_Allows(t *testing.T) {
	fs := &fakeScripter{reply: []any{int64(1), int64(19), int64(0)}}
	tb := mw.NewTokenBucket(fs, 5, 20, mw.PerIPKey("wr"))

	req := httptest.NewRequest("POST", "/api/books", nil)
	req.RemoteAddr = "10.0.0.7:5555"
	rec := httptest.NewRecorder()
	tb.Middleware(okHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", rec.Code)
	}
	if rec.Header().Get("X-RateLimit-Remaining") != "19" {
		t.Errorf("unexpected remaining: %q", rec.Header().Get("X-RateLimit-Remaining"))
	}
	if len(fs.keys) == 0 || fs.keys[0] != "wr:10.0.0.7" {
		t.Errorf("unexpected key: %v", fs.keys)
	}
}

func TestTokenBucket_Blocks(t *testing.T) {
	fs := &fakeScripter{reply: []any{int64(0), int64(0), int64(1500)}}
	tb := mw.NewTokenBucket(fs, 5, 20, mw.PerIPKey("wr"))

	req := httptest.NewRequest("DELETE", "/api/books/1", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	rec := httptest.NewRecorder()
	tb.Middleware(okHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("Expected 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") != "2" {
		t.Errorf("Expected Retry-After 2, got %q", rec.Header().Get("Retry-After"))
	}
	if fs.keys[0] != "wr:203.0.113.9" {
		t.Errorf("unexpected key: %v", fs.keys)
	}
}

func TestTokenBucket_FailsOpen(t *testing.T) {
	fs := &fakeScripter{err: errors.New("dial tcp: connection refused")}
	tb := mw.NewTokenBucket(fs, 5, 20, mw.PerIPKey("wr"))

	rec := httptest.NewRecorder()
	tb.Middleware(okHandler()).ServeHTTP(rec, httptest.NewRequest("POST", "/api/books", nil))

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected request through on redis error, got %d", rec.Code)
	}
}

func TestTokenBucket_NilIsPassthrough(t *testing.T) {
	var tb *mw.TokenBucket

	rec := httptest.NewRecorder()
	tb.Middleware(okHandler()).ServeHTTP(rec, httptest.NewRequest("POST", "/api/books", nil))

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", rec.Code)
	}
}

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/milibrary/milibrary-api/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_ExposesCollectors(t *testing.T) {
	m := metrics.New()
	m.ObserveRequest(http.MethodGet, "/api/books", 200, 15*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/api/books", 200, 5*time.Millisecond)
	m.SetBooks(7)

	expected := `
# HELP milibrary_books_total Total number of books in library
# TYPE milibrary_books_total gauge
milibrary_books_total 7
`
	require.NoError(t, testutil.GatherAndCompare(m.Gatherer(), strings.NewReader(expected), "milibrary_books_total"))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `http_requests_total{endpoint="/api/books",method="GET",status="200"} 2`)
	assert.Contains(t, body, `http_request_duration_seconds_count{endpoint="/api/books",method="GET"} 2`)
	assert.Contains(t, body, `milibrary_api_info{version="1.0.0"} 1`)
}

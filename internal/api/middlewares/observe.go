package middlewares

import (
	"log"
	"net/http"
	"strings"
	"time"
)

// RequestObserver receives one sample per finished request.
type RequestObserver interface {
	ObserveRequest(method, endpoint string, status int, d time.Duration)
}

type statusWriter struct {
	http.ResponseWriter
	start       time.Time
	wroteHeader bool
	status      int
}

func (w *statusWriter) stamp() {
	if !w.wroteHeader {
		w.Header().Set("X-Response-Time", time.Since(w.start).String())
		w.wroteHeader = true
	}
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
	}
	w.stamp()
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.stamp()
	return w.ResponseWriter.Write(b)
}

func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

// Observe times every request, reports it to obs and logs one line.
// It must wrap the ServeMux directly (or through handlers that keep the
// same *http.Request) so the matched route pattern is visible afterwards.
func Observe(obs RequestObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{
				ResponseWriter: w,
				start:          time.Now(),
				status:         http.StatusOK,
			}
			next.ServeHTTP(sw, r)

			d := time.Since(sw.start)
			if !sw.wroteHeader {
				sw.Header().Set("X-Response-Time", d.String())
			}
			endpoint := RouteLabel(r)
			if obs != nil {
				obs.ObserveRequest(r.Method, endpoint, sw.status, d)
			}
			log.Printf("[http] %s %s - %d - %.3fs rid=%s", r.Method, r.URL.Path, sw.status, d.Seconds(), GetRequestID(r))
		})
	}
}

// RouteLabel is the matched route without its method, e.g. "/api/books/{id}".
// Requests that matched no route share the label "unmatched".
func RouteLabel(r *http.Request) string {
	p := r.Pattern
	if p == "" {
		return "unmatched"
	}
	if i := strings.IndexByte(p, ' '); i >= 0 {
		p = strings.TrimSpace(p[i+1:])
	}
	return p
}

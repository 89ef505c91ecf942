package router

import (
	"net/http"

	"github.com/milibrary/milibrary-api/internal/api/handlers"
	"github.com/milibrary/milibrary-api/internal/api/handlers/books"
	mw "github.com/milibrary/milibrary-api/internal/api/middlewares"
	"github.com/milibrary/milibrary-api/internal/metrics"
	"github.com/milibrary/milibrary-api/internal/store/dbx"
)

type Deps struct {
	Pool         dbx.Acquirer
	Metrics      *metrics.Registry
	Limiter      *mw.TokenBucket // nil disables write limiting
	MaxBodyBytes int64
}

func Router(d Deps) *http.ServeMux {
	mux := http.NewServeMux()
	write := d.Limiter.Middleware

	mux.HandleFunc("GET /health", handlers.Health(d.Pool))
	mux.HandleFunc("GET /metrics", handlers.Metrics(d.Pool, d.Metrics))

	mux.HandleFunc("GET /api/books", books.List(d.Pool))
	mux.Handle("POST /api/books", write(books.Create(d.Pool)))
	mux.HandleFunc("GET /api/books/{id}", books.Get(d.Pool))
	mux.Handle("DELETE /api/books/{id}", write(books.Delete(d.Pool)))

	mux.HandleFunc("GET /api/stats", handlers.Stats(d.Pool))

	return mux
}

// Handler is the router with the full middleware stack, outermost first.
// Observe sits next to the mux so it can read the matched pattern.
func Handler(d Deps) http.Handler {
	return mw.Chain(Router(d),
		mw.RequestID,
		mw.SecurityHeaders,
		mw.BodySizeLimit(d.MaxBodyBytes),
		mw.Observe(d.Metrics),
		mw.Recovery,
	)
}

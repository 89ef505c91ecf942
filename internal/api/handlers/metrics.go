package handlers

import (
	"database/sql"
	"log"
	"net/http"

	storebooks "github.com/milibrary/milibrary-api/internal/store/books"
	"github.com/milibrary/milibrary-api/internal/store/dbx"
)

// Exporter is the part of the metrics registry the scrape handler needs.
type Exporter interface {
	SetBooks(n int64)
	Handler() http.Handler
}

// Metrics refreshes the book gauge and renders the registry. A failed
// refresh is logged and the last known value is served.
func Metrics(pool dbx.Acquirer, exp Exporter) http.HandlerFunc {
	render := exp.Handler()
	return func(w http.ResponseWriter, r *http.Request) {
		err := pool.WithConn(r.Context(), func(conn *sql.Conn) error {
			n, err := storebooks.Count(r.Context(), conn)
			if err != nil {
				return err
			}
			exp.SetBooks(n)
			return nil
		})
		if err != nil {
			log.Printf("[metrics] refreshing book count: %v", err)
		}
		render.ServeHTTP(w, r)
	}
}

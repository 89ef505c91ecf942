package handlers

import (
	"database/sql"
	"net/http"

	"github.com/milibrary/milibrary-api/internal/api/apperr"
	"github.com/milibrary/milibrary-api/internal/api/httpx"
	storebooks "github.com/milibrary/milibrary-api/internal/store/books"
	"github.com/milibrary/milibrary-api/internal/store/dbx"
)

// GET /api/stats
func Stats(pool dbx.Acquirer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var st storebooks.Stats
		err := pool.WithConn(r.Context(), func(conn *sql.Conn) error {
			var err error
			st, err = storebooks.GetStats(r.Context(), conn)
			return err
		})
		if err != nil {
			apperr.Respond(w, r, apperr.Internal("Failed to fetch stats", err))
			return
		}
		httpx.OK(w, st)
	}
}

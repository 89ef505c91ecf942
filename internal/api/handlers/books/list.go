package books

import (
	"database/sql"
	"net/http"

	"github.com/milibrary/milibrary-api/internal/api/apperr"
	"github.com/milibrary/milibrary-api/internal/api/httpx"
	storebooks "github.com/milibrary/milibrary-api/internal/store/books"
	"github.com/milibrary/milibrary-api/internal/store/dbx"
	"github.com/milibrary/milibrary-api/internal/validate"
)

// List serves GET /api/books?search=&limit=&offset=.
func List(pool dbx.Acquirer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		limit, offset, err := validate.ParseLimitOffset(q.Get("limit"), q.Get("offset"))
		if err != nil {
			apperr.Respond(w, r, apperr.Validation(err.Error()))
			return
		}
		filter := storebooks.ListFilter{
			Search: validate.Clean(q.Get("search")),
			Limit:  limit,
			Offset: offset,
		}

		var out []storebooks.Book
		err = pool.WithConn(r.Context(), func(conn *sql.Conn) error {
			var err error
			out, err = storebooks.List(r.Context(), conn, filter)
			return err
		})
		if err != nil {
			respondStoreError(w, r, err, "Failed to list books")
			return
		}
		httpx.OK(w, out)
	}
}

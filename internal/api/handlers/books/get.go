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

func Get(pool dbx.Acquirer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validate.ParseID(r.PathValue("id"))
		if err != nil {
			apperr.Respond(w, r, apperr.Validation(err.Error()))
			return
		}

		var b storebooks.Book
		err = pool.WithConn(r.Context(), func(conn *sql.Conn) error {
			var err error
			b, err = storebooks.Get(r.Context(), conn, id)
			return err
		})
		if err != nil {
			respondStoreError(w, r, err, "Failed to fetch book")
			return
		}
		httpx.OK(w, b)
	}
}

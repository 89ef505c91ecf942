package books

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"github.com/milibrary/milibrary-api/internal/api/apperr"
	"github.com/milibrary/milibrary-api/internal/api/httpx"
	storebooks "github.com/milibrary/milibrary-api/internal/store/books"
	"github.com/milibrary/milibrary-api/internal/store/dbx"
	"github.com/milibrary/milibrary-api/internal/validate"
)

func Delete(pool dbx.Acquirer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validate.ParseID(r.PathValue("id"))
		if err != nil {
			apperr.Respond(w, r, apperr.Validation(err.Error()))
			return
		}

		var title string
		err = pool.WithConn(r.Context(), func(conn *sql.Conn) error {
			var err error
			title, err = storebooks.Delete(r.Context(), conn, id)
			return err
		})
		if err != nil {
			respondStoreError(w, r, err, "Failed to delete book")
			return
		}

		log.Printf("[books] deleted %q (id=%d)", title, id)
		httpx.OK(w, httpx.Message{Message: fmt.Sprintf("Book '%s' deleted", title)})
	}
}

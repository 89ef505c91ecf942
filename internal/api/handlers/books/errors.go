package books

import (
	"errors"
	"net/http"

	"github.com/milibrary/milibrary-api/internal/api/apperr"
	storebooks "github.com/milibrary/milibrary-api/internal/store/books"
)

// respondStoreError turns a store failure into the matching client error.
// fallback is the message for anything unexpected.
func respondStoreError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, storebooks.ErrNotFound):
		apperr.Respond(w, r, apperr.NotFound("Book not found"))
	case errors.Is(err, storebooks.ErrConflict):
		apperr.Respond(w, r, apperr.Conflict("Book already exists"))
	default:
		if pe, ok := apperr.FromPG(err); ok && pe.Kind != apperr.KindInternal {
			apperr.Respond(w, r, pe)
			return
		}
		apperr.Respond(w, r, apperr.Internal(fallback, err))
	}
}

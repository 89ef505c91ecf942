package books

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/milibrary/milibrary-api/internal/api/apperr"
	"github.com/milibrary/milibrary-api/internal/api/httpx"
	storebooks "github.com/milibrary/milibrary-api/internal/store/books"
	"github.com/milibrary/milibrary-api/internal/store/dbx"
	"github.com/milibrary/milibrary-api/internal/validate"
)

// createRequest mirrors what the mobile client posts. Fields it sends that
// are not listed here are ignored.
type createRequest struct {
	GoogleBooksID *string `json:"googleBooksId"`
	Title         string  `json:"title"`
	Authors       *string `json:"authors"`
	Description   *string `json:"description"`
	ThumbnailURL  *string `json:"thumbnailUrl"`
}

func (req createRequest) toDTO() (storebooks.CreateBook, error) {
	title, err := validate.Required("title", req.Title)
	if err != nil {
		return storebooks.CreateBook{}, err
	}
	return storebooks.CreateBook{
		GoogleBooksID: validate.Optional(req.GoogleBooksID),
		Title:         title,
		Authors:       validate.Optional(req.Authors),
		Description:   validate.Optional(req.Description),
		ThumbnailURL:  validate.Optional(req.ThumbnailURL),
	}, nil
}

// Create serves POST /api/books.
func Create(pool dbx.Acquirer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var body createRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				apperr.WriteStatus(w, r, http.StatusRequestEntityTooLarge, "", "request body too large")
				return
			}
			apperr.Respond(w, r, apperr.Validation("invalid JSON body"))
			return
		}
		dto, err := body.toDTO()
		if err != nil {
			apperr.Respond(w, r, apperr.Validation(err.Error()))
			return
		}

		var created storebooks.Book
		err = pool.WithConn(r.Context(), func(conn *sql.Conn) error {
			var err error
			created, err = storebooks.Create(r.Context(), conn, dto)
			return err
		})
		if err != nil {
			respondStoreError(w, r, err, "Failed to create book")
			return
		}

		log.Printf("[books] created %q (id=%d)", created.Title, created.ID)
		httpx.Created(w, created)
	}
}

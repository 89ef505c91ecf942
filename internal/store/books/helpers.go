package books

import (
	"database/sql"
	"strings"

	"github.com/milibrary/milibrary-api/internal/store/dbx"
)

const bookColumns = `id, google_books_id, title, authors, description, thumbnail_url, date_added, date_updated`

type scanner interface {
	Scan(dest ...any) error
}

func scanBook(s scanner) (Book, error) {
	var (
		b                                     Book
		googleID, authors, desc, thumbnailURL sql.NullString
	)
	if err := s.Scan(&b.ID, &googleID, &b.Title, &authors, &desc, &thumbnailURL, &b.DateAdded, &b.DateUpdated); err != nil {
		return Book{}, err
	}
	b.GoogleBooksID = dbx.StringPtr(googleID)
	b.Authors = dbx.StringPtr(authors)
	b.Description = dbx.StringPtr(desc)
	b.ThumbnailURL = dbx.StringPtr(thumbnailURL)
	return b, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE/ILIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

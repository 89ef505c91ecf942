package books

import (
	"context"

	"github.com/milibrary/milibrary-api/internal/store/dbx"
)

// Create rejects a duplicate google_books_id with ErrConflict and otherwise
// inserts the book. The check and the insert are separate statements, so two
// concurrent creates with the same external id can both pass the check.
func Create(ctx context.Context, q dbx.DBTX, in CreateBook) (Book, error) {
	if in.GoogleBooksID != nil && *in.GoogleBooksID != "" {
		exists, err := ExistsByGoogleID(ctx, q, *in.GoogleBooksID)
		if err != nil {
			return Book{}, err
		}
		if exists {
			return Book{}, ErrConflict
		}
	}
	return Insert(ctx, q, in)
}

// Insert stores a new row; id and both timestamps come from the database.
func Insert(ctx context.Context, q dbx.DBTX, in CreateBook) (Book, error) {
	row := q.QueryRowContext(ctx, `
		INSERT INTO books (google_books_id, title, authors, description, thumbnail_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+bookColumns,
		dbx.NullIfEmpty(in.GoogleBooksID),
		in.Title,
		dbx.NullIfEmpty(in.Authors),
		dbx.NullIfEmpty(in.Description),
		dbx.NullIfEmpty(in.ThumbnailURL),
	)
	return scanBook(row)
}

package books

import (
	"context"
	"database/sql"
	"errors"

	"github.com/milibrary/milibrary-api/internal/store/dbx"
)

func Get(ctx context.Context, q dbx.DBTX, id int64) (Book, error) {
	row := q.QueryRowContext(ctx, `SELECT `+bookColumns+` FROM books WHERE id = $1`, id)
	b, err := scanBook(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Book{}, ErrNotFound
	}
	return b, err
}

// ExistsByGoogleID reports whether a book with the given external id is stored.
func ExistsByGoogleID(ctx context.Context, q dbx.DBTX, googleID string) (bool, error) {
	var id int64
	err := q.QueryRowContext(ctx, `SELECT id FROM books WHERE google_books_id = $1`, googleID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

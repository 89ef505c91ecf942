package books

import (
	"context"
	"database/sql"
	"errors"

	"github.com/milibrary/milibrary-api/internal/store/dbx"
)

// Delete removes the book and returns its title.
func Delete(ctx context.Context, q dbx.DBTX, id int64) (string, error) {
	var title string
	err := q.QueryRowContext(ctx, `DELETE FROM books WHERE id = $1 RETURNING title`, id).Scan(&title)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	return title, err
}

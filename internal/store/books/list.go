package books

import (
	"context"
	"strconv"

	"github.com/milibrary/milibrary-api/internal/store/dbx"
)

// List returns one page of books, newest first.
func List(ctx context.Context, q dbx.DBTX, f ListFilter) ([]Book, error) {
	args := []any{}
	query := `SELECT ` + bookColumns + ` FROM books`
	if f.Search != "" {
		args = append(args, escapeLike(f.Search))
		query += ` WHERE title ILIKE '%' || $1 || '%' OR authors ILIKE '%' || $1 || '%'`
	}
	query += ` ORDER BY date_added DESC LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Book, 0, f.Limit)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

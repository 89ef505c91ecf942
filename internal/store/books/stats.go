package books

import (
	"context"

	"github.com/milibrary/milibrary-api/internal/store/dbx"
)

const RecentLimit = 3

func Count(ctx context.Context, q dbx.DBTX) (int64, error) {
	var n int64
	err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM books`).Scan(&n)
	return n, err
}

// RecentTitles lists the titles of the n most recently added books.
func RecentTitles(ctx context.Context, q dbx.DBTX, n int) ([]string, error) {
	rows, err := q.QueryContext(ctx, `SELECT title FROM books ORDER BY date_added DESC LIMIT $1`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	titles := make([]string, 0, n)
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		titles = append(titles, t)
	}
	return titles, rows.Err()
}

func GetStats(ctx context.Context, q dbx.DBTX) (Stats, error) {
	total, err := Count(ctx, q)
	if err != nil {
		return Stats{}, err
	}
	recent, err := RecentTitles(ctx, q, RecentLimit)
	if err != nil {
		return Stats{}, err
	}
	return Stats{TotalBooks: total, RecentBooks: recent}, nil
}

// Ping runs the trivial liveness query.
func Ping(ctx context.Context, q dbx.DBTX) error {
	var one int
	return q.QueryRowContext(ctx, `SELECT 1`).Scan(&one)
}

package apperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// FromPG maps a Postgres error to a typed Error. Returns false for non-PG errors.
func FromPG(err error) (*Error, bool) {
	var pg *pgconn.PgError
	if !errors.As(err, &pg) {
		return nil, false
	}

	switch pg.Code {
	case "23505": // unique_violation
		e := Conflict("Book already exists")
		e.Err = err
		return e, true
	case "23502": // not_null_violation
		field := pg.ColumnName
		if field == "" {
			field = "field"
		}
		e := Validation(field + " is required")
		e.Err = err
		return e, true
	case "22001": // string_data_right_truncation
		e := Validation("value is too long")
		e.Err = err
		return e, true
	default:
		return Internal("Database error", err), true
	}
}

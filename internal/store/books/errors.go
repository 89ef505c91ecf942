package books

import "errors"

var (
	ErrNotFound = errors.New("book not found")
	ErrConflict = errors.New("book already exists")
)

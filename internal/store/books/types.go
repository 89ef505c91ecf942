package books

import "time"

type Book struct {
	ID            int64     `json:"id"`
	GoogleBooksID *string   `json:"googleBooksId"`
	Title         string    `json:"title"`
	Authors       *string   `json:"authors"`
	Description   *string   `json:"description"`
	ThumbnailURL  *string   `json:"thumbnailUrl"`
	DateAdded     time.Time `json:"date_added"`
	DateUpdated   time.Time `json:"date_updated"`
}

type CreateBook struct {
	GoogleBooksID *string
	Title         string
	Authors       *string
	Description   *string
	ThumbnailURL  *string
}

type ListFilter struct {
	Search string // substring of title or authors, case-insensitive
	Limit  int
	Offset int
}

type Stats struct {
	TotalBooks  int64    `json:"total_books"`
	RecentBooks []string `json:"recent_books"`
}

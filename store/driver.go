package store

import (
	"context"
	"database/sql"
)

// MovieMatch is a single ranked full-text match from the movie catalog.
type MovieMatch struct {
	Title     string
	Relevance float64
}

// Driver is an interface for the catalog database driver.
type Driver interface {
	GetDB() *sql.DB
	Close() error

	// SearchMovies performs a ranked full-text lookup against the catalog,
	// returning up to limit matches ordered by descending relevance.
	SearchMovies(ctx context.Context, query string, limit int) ([]*MovieMatch, error)
}

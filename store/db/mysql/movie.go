package mysql

import (
	"context"

	"github.com/pkg/errors"

	"github.com/cinemind/cinechat/store"
)

// SearchMovies performs a ranked full-text lookup against the movies table.
// Relevance scoring is delegated to the engine's MATCH ... AGAINST.
func (d *DB) SearchMovies(ctx context.Context, query string, limit int) ([]*store.MovieMatch, error) {
	stmt := `
		SELECT title, MATCH(title) AGAINST (?) AS relevance
		FROM movies
		WHERE MATCH(title) AGAINST (?)
		ORDER BY relevance DESC
		LIMIT ?`

	rows, err := d.db.QueryContext(ctx, stmt, query, query, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query movies")
	}
	defer rows.Close()

	var matches []*store.MovieMatch
	for rows.Next() {
		match := &store.MovieMatch{}
		if err := rows.Scan(&match.Title, &match.Relevance); err != nil {
			return nil, errors.Wrap(err, "failed to scan movie row")
		}
		matches = append(matches, match)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate movie rows")
	}

	return matches, nil
}

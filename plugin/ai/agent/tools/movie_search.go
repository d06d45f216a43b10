package tools

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pkg/errors"

	"github.com/cinemind/cinechat/store"
)

const (
	// searchLimit caps the number of ranked matches per lookup.
	searchLimit = 10

	// noResultsMessage is the fixed reply for an empty result set.
	noResultsMessage = "No movie recommendations found for your query."

	// connectionFailedMessage is the fixed reply when the catalog is
	// unreachable. The process keeps running; the next request reconnects.
	connectionFailedMessage = "Failed to connect to database"
)

// MovieSearchTool answers a query with a ranked full-text lookup against the
// movie catalog.
type MovieSearchTool struct {
	manager     *store.Manager
	queryGetter func(ctx context.Context) string
}

// NewMovieSearchTool creates a new movie search tool.
func NewMovieSearchTool(manager *store.Manager, queryGetter func(ctx context.Context) string) (*MovieSearchTool, error) {
	if manager == nil {
		return nil, errors.New("manager cannot be nil")
	}
	if queryGetter == nil {
		queryGetter = QueryFromContext
	}
	return &MovieSearchTool{
		manager:     manager,
		queryGetter: queryGetter,
	}, nil
}

// Name returns the name of the tool.
func (t *MovieSearchTool) Name() string {
	return "search_movies"
}

// Description returns a description of what the tool does.
func (t *MovieSearchTool) Description() string {
	return `Searches the movie catalog with ranked full-text matching.

The query is taken from the request context; the tool takes no arguments.

OUTPUT FORMAT (text):
Here are some movie recommendations:
- Title (Relevance: 9.87)
- Another Title (Relevance: 8.10)

NO RESULTS: "` + noResultsMessage + `"`
}

// Run executes the catalog search for the context-bound query.
func (t *MovieSearchTool) Run(ctx context.Context, _ string) (string, error) {
	query := strings.TrimSpace(t.queryGetter(ctx))
	if query == "" {
		return "", errors.New("query cannot be empty")
	}

	driver, err := t.manager.Get(ctx)
	if err != nil {
		slog.Warn("catalog unavailable", "error", err)
		return connectionFailedMessage, nil
	}

	matches, err := driver.SearchMovies(ctx, query, searchLimit)
	if err != nil {
		// Drop the shared handle so the next call reconnects instead of
		// reusing a possibly broken connection.
		t.manager.Discard()
		return "", errors.Wrap(err, "movie search failed")
	}

	return formatMatches(matches), nil
}

// formatMatches renders ranked matches as a recommendation list.
func formatMatches(matches []*store.MovieMatch) string {
	if len(matches) == 0 {
		return noResultsMessage
	}

	var response strings.Builder
	response.WriteString("Here are some movie recommendations:\n")
	for _, match := range matches {
		fmt.Fprintf(&response, "- %s (Relevance: %.2f)\n", match.Title, match.Relevance)
	}
	return response.String()
}

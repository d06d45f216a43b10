// Package tools provides the tools registered with the recommendation agent.
package tools

import "context"

// queryContextKey is the context key for the query under answer. The
// orchestration layer invokes tools without arguments, so the router binds
// the current query into the request context instead.
type queryContextKey struct{}

// WithQuery returns a context carrying the query text.
func WithQuery(ctx context.Context, query string) context.Context {
	return context.WithValue(ctx, queryContextKey{}, query)
}

// QueryFromContext extracts the query text from the context.
func QueryFromContext(ctx context.Context) string {
	if v := ctx.Value(queryContextKey{}); v != nil {
		if query, ok := v.(string); ok {
			return query
		}
	}
	return ""
}

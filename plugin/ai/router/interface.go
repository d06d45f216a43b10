// Package router composes the chat pipeline: classification, verdict
// interpretation, and dispatch to the structured search path or the generic
// completion path.
package router

import "context"

// RouterService answers one query with one text response. It never returns
// an error; every internal fault is rendered into the response text.
type RouterService interface {
	Handle(ctx context.Context, query string) string
}

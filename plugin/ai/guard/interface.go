// Package guard provides the safety/intent classification boundary for the
// chat pipeline. Every incoming query is screened by an external moderation
// classifier before it is routed; this package caches the verdicts and
// interprets them into routing categories.
package guard

import (
	"context"

	"github.com/cinemind/cinechat/plugin/ai"
)

// Verdict is the classifier's judgment of a single query: free text plus
// optional structured fields. Depending on the classifier deployment the
// judgment arrives either in Content directly or as the last message of a
// generated conversation.
type Verdict struct {
	// Content is the structured form of the verdict text.
	Content string

	// LastMessage carries the verdict when the classifier returns a
	// conversation object instead of a flat record.
	LastMessage *ai.Message
}

// Text normalizes the verdict to a single textual form: the structured
// content if present, otherwise the last message content.
func (v *Verdict) Text() string {
	if v == nil {
		return ""
	}
	if v.Content != "" {
		return v.Content
	}
	if v.LastMessage != nil {
		return v.LastMessage.Content
	}
	return ""
}

// Classifier is the external moderation classifier. One single-turn
// conversation in, one verdict out.
type Classifier interface {
	Classify(ctx context.Context, conversation []ai.Message) (*Verdict, error)
}

// GuardService screens queries through the classifier, caching verdicts by
// exact query text for the process lifetime.
type GuardService interface {
	// Check returns the verdict for the query, invoking the classifier at
	// most once per distinct query text.
	Check(ctx context.Context, query string) (*Verdict, error)
}

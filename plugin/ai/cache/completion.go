package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cinemind/cinechat/plugin/ai"
)

const (
	// DefaultCapacity bounds the completion cache.
	DefaultCapacity = 100

	// placeholderResponse is returned when the provider yields no content.
	placeholderResponse = "No response generated"
)

// CompletionService memoizes LLM completions keyed by exact query text.
//
// This path faces the end user directly with no retry above the provider's
// own transport layer, so it always returns text: provider failures are
// rendered as an error-description string and cached like any other answer.
type CompletionService struct {
	llm ai.LLMService
	lru *LRU
}

// NewCompletionService creates a completion service with the given capacity.
func NewCompletionService(llm ai.LLMService, capacity int) *CompletionService {
	return &CompletionService{
		llm: llm,
		lru: NewLRU(capacity),
	}
}

// Completion returns the completion text for the query. A hit never calls
// the provider; a miss calls it once and caches whatever text results.
func (s *CompletionService) Completion(ctx context.Context, query string) string {
	if text, ok := s.lru.Get(query); ok {
		return text
	}

	start := time.Now()
	text, err := s.llm.Chat(ctx, []ai.Message{ai.UserMessage(query)})
	switch {
	case err != nil:
		slog.Warn("completion failed", "query", truncate(query, 50), "error", err)
		text = fmt.Sprintf("Error getting LLM response: %v", err)
	case text == "":
		text = placeholderResponse
	}

	s.lru.Set(query, text)
	slog.Debug("completion generated",
		"query", truncate(query, 50),
		"latency_ms", time.Since(start).Milliseconds())
	return text
}

// Len returns the number of cached completions.
func (s *CompletionService) Len() int {
	return s.lru.Len()
}

// truncate truncates a string to maxLen characters.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

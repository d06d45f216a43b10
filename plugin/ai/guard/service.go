package guard

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/cinemind/cinechat/plugin/ai"
)

// Service implements GuardService with an in-memory verdict cache.
//
// The cache is keyed by exact query text (case-sensitive, no normalization)
// and lives for the process lifetime; it grows with distinct query texts,
// an accepted trade-off for this workload. Population is serialized per key
// so concurrent first requests for the same query share one classifier call.
type Service struct {
	classifier Classifier

	mu    sync.RWMutex
	cache map[string]*Verdict
	group singleflight.Group
}

// NewService creates a guard service around the given classifier.
func NewService(classifier Classifier) *Service {
	return &Service{
		classifier: classifier,
		cache:      make(map[string]*Verdict),
	}
}

// Check returns the cached verdict for the query, invoking the classifier
// once on first occurrence.
func (s *Service) Check(ctx context.Context, query string) (*Verdict, error) {
	s.mu.RLock()
	verdict, ok := s.cache[query]
	s.mu.RUnlock()
	if ok {
		return verdict, nil
	}

	v, err, shared := s.group.Do(query, func() (any, error) {
		// A concurrent caller may have populated the entry already.
		s.mu.RLock()
		verdict, ok := s.cache[query]
		s.mu.RUnlock()
		if ok {
			return verdict, nil
		}

		start := time.Now()
		verdict, err := s.classifier.Classify(ctx, []ai.Message{ai.UserMessage(query)})
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.cache[query] = verdict
		s.mu.Unlock()

		slog.Debug("query classified",
			"query", truncate(query, 50),
			"verdict", truncate(verdict.Text(), 80),
			"latency_ms", time.Since(start).Milliseconds())
		return verdict, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		slog.Debug("classifier call shared with concurrent request", "query", truncate(query, 50))
	}
	return v.(*Verdict), nil
}

// Size returns the number of cached verdicts.
func (s *Service) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cache)
}

// truncate truncates a string to maxLen characters.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// Ensure Service implements GuardService.
var _ GuardService = (*Service)(nil)

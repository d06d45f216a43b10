package guard

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/cinemind/cinechat/plugin/ai"
)

// MockClassifier is a Classifier for testing.
type MockClassifier struct {
	mu       sync.Mutex
	verdicts map[string]*Verdict
	err      error
	calls    int32
}

// NewMockClassifier creates an empty mock classifier.
func NewMockClassifier() *MockClassifier {
	return &MockClassifier{verdicts: make(map[string]*Verdict)}
}

// SetVerdict registers the verdict to return for a query.
func (m *MockClassifier) SetVerdict(query string, verdict *Verdict) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.verdicts[query] = verdict
}

// SetError makes every Classify call fail.
func (m *MockClassifier) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// CallCount returns the number of Classify invocations.
func (m *MockClassifier) CallCount() int {
	return int(atomic.LoadInt32(&m.calls))
}

// Classify returns the registered verdict for the last message's content.
// Unregistered queries get an empty general verdict.
func (m *MockClassifier) Classify(_ context.Context, conversation []ai.Message) (*Verdict, error) {
	atomic.AddInt32(&m.calls, 1)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}

	if len(conversation) > 0 {
		if verdict, ok := m.verdicts[conversation[len(conversation)-1].Content]; ok {
			return verdict, nil
		}
	}
	return &Verdict{Content: "ok"}, nil
}

// Ensure MockClassifier implements Classifier.
var _ Classifier = (*MockClassifier)(nil)

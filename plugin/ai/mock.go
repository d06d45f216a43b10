package ai

import (
	"context"
	"sync"
	"sync/atomic"
)

// MockLLMService is an LLMService for testing.
type MockLLMService struct {
	mu        sync.Mutex
	responses map[string]string
	err       error
	calls     int32
}

// NewMockLLMService creates an empty mock LLM service.
func NewMockLLMService() *MockLLMService {
	return &MockLLMService{responses: make(map[string]string)}
}

// SetResponse registers the completion to return for a user message.
func (m *MockLLMService) SetResponse(content, response string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[content] = response
}

// SetError makes every Chat call fail.
func (m *MockLLMService) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// CallCount returns the number of Chat invocations.
func (m *MockLLMService) CallCount() int {
	return int(atomic.LoadInt32(&m.calls))
}

// Chat returns the registered response for the last message's content, or
// an empty string if none is registered.
func (m *MockLLMService) Chat(_ context.Context, messages []Message) (string, error) {
	atomic.AddInt32(&m.calls, 1)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	if len(messages) == 0 {
		return "", nil
	}
	return m.responses[messages[len(messages)-1].Content], nil
}

// Ensure MockLLMService implements LLMService.
var _ LLMService = (*MockLLMService)(nil)

package agent

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinemind/cinechat/plugin/ai"
)

type stubTool struct {
	name   string
	output string
	err    error
	calls  int
}

func (t *stubTool) Name() string        { return t.name }
func (t *stubTool) Description() string { return "stub" }

func (t *stubTool) Run(_ context.Context, _ string) (string, error) {
	t.calls++
	return t.output, t.err
}

func TestToolRunnerAppendsAssistantMessage(t *testing.T) {
	tool := &stubTool{name: "search_movies", output: "Here are some movie recommendations:\n- Heat (Relevance: 7.00)\n"}
	agent := &Agent{
		Name:         "MovieRecommendationAgent",
		Instructions: "You are a helpful movie recommendation agent.",
		Tools:        []Tool{tool},
	}

	messages := []ai.Message{ai.UserMessage("recommend a crime movie")}
	result, err := NewToolRunner().Run(context.Background(), agent, messages)
	require.NoError(t, err)

	assert.Equal(t, 1, tool.calls)
	assert.Len(t, result.Messages, 2)
	assert.Equal(t, tool.output, result.LastContent())
}

func TestToolRunnerRendersToolFailureAsAnswer(t *testing.T) {
	tool := &stubTool{name: "search_movies", err: errors.New("movie search failed: server has gone away")}
	agent := &Agent{Name: "MovieRecommendationAgent", Tools: []Tool{tool}}

	result, err := NewToolRunner().Run(context.Background(), agent, nil)
	require.NoError(t, err)

	assert.Contains(t, result.LastContent(), "Error getting recommendations:")
	assert.Contains(t, result.LastContent(), "server has gone away")
}

func TestToolRunnerValidation(t *testing.T) {
	runner := NewToolRunner()

	_, err := runner.Run(context.Background(), nil, nil)
	assert.ErrorIs(t, err, ErrNilAgent)

	_, err = runner.Run(context.Background(), &Agent{Name: "empty"}, nil)
	assert.ErrorIs(t, err, ErrNoTools)
}

func TestRunResultLastContent(t *testing.T) {
	var empty *RunResult
	assert.Equal(t, "", empty.LastContent())
	assert.Equal(t, "", (&RunResult{}).LastContent())
}

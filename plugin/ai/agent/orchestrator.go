package agent

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cinemind/cinechat/plugin/ai"
)

// ToolRunner is an Orchestrator that invokes the agent's first registered
// tool and folds its output into the conversation as an assistant message.
//
// A tool failure is terminal for the run but not for the user: the failure
// is rendered as the assistant's answer, because this path faces the end
// user directly.
type ToolRunner struct{}

// NewToolRunner creates a new tool-running orchestrator.
func NewToolRunner() *ToolRunner {
	return &ToolRunner{}
}

// Run executes the agent's tools against the conversation.
func (*ToolRunner) Run(ctx context.Context, agent *Agent, messages []ai.Message) (*RunResult, error) {
	if agent == nil {
		return nil, ErrNilAgent
	}
	if len(agent.Tools) == 0 {
		return nil, ErrNoTools
	}

	tool := agent.Tools[0]
	start := time.Now()
	output, err := tool.Run(ctx, "")
	if err != nil {
		slog.Warn("tool execution failed",
			"agent", agent.Name,
			"tool", tool.Name(),
			"error", err)
		output = fmt.Sprintf("Error getting recommendations: %v", err)
	}

	slog.Debug("tool executed",
		"agent", agent.Name,
		"tool", tool.Name(),
		"latency_ms", time.Since(start).Milliseconds())

	return &RunResult{
		Messages: append(messages, ai.AssistantMessage(output)),
	}, nil
}

// Ensure ToolRunner implements Orchestrator.
var _ Orchestrator = (*ToolRunner)(nil)

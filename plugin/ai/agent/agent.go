// Package agent provides the tool-calling orchestration layer that answers
// catalog-bound queries.
package agent

import (
	"context"

	"github.com/cinemind/cinechat/plugin/ai"
)

// Tool defines the interface for executable tools.
type Tool interface {
	// Name returns the tool's identifier.
	Name() string
	// Description returns what the tool does.
	Description() string
	// Run executes the tool with the given input. Request-scoped state
	// (such as the query being answered) travels in ctx, not in input.
	Run(ctx context.Context, input string) (string, error)
}

// Agent describes a named agent and the tools registered with it.
type Agent struct {
	Name         string
	Instructions string
	Tools        []Tool
}

// RunResult is the conversation produced by one orchestration run.
type RunResult struct {
	Messages []ai.Message
}

// LastContent returns the content of the final message, or an empty string
// for an empty run.
func (r *RunResult) LastContent() string {
	if r == nil || len(r.Messages) == 0 {
		return ""
	}
	return r.Messages[len(r.Messages)-1].Content
}

// Orchestrator runs an agent over a conversation. The orchestrator decides
// when to invoke the registered tools; callers cannot pass arguments into a
// tool call directly.
type Orchestrator interface {
	Run(ctx context.Context, agent *Agent, messages []ai.Message) (*RunResult, error)
}

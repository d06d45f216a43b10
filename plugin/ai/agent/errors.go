package agent

import "errors"

var (
	// ErrNoTools indicates the agent has no registered tools to run.
	ErrNoTools = errors.New("agent has no tools")

	// ErrNilAgent indicates Run was invoked without an agent.
	ErrNilAgent = errors.New("agent is nil")
)

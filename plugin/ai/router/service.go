package router

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cinemind/cinechat/plugin/ai"
	"github.com/cinemind/cinechat/plugin/ai/agent"
	"github.com/cinemind/cinechat/plugin/ai/agent/tools"
	"github.com/cinemind/cinechat/plugin/ai/cache"
	"github.com/cinemind/cinechat/plugin/ai/guard"
)

// Service implements the RouterService pipeline:
//  1. look up (or populate) the classifier verdict for the query
//  2. return refusal content verbatim on the fast path
//  3. interpret the verdict into a routing category
//  4. answer catalog queries via the agent's structured search path
//  5. answer everything else from the completion cache
type Service struct {
	guard        guard.GuardService
	interpreter  *guard.Interpreter
	completions  *cache.CompletionService
	orchestrator agent.Orchestrator
	agent        *agent.Agent
}

// Config contains the collaborators for the router service.
type Config struct {
	Guard        guard.GuardService
	Interpreter  *guard.Interpreter
	Completions  *cache.CompletionService
	Orchestrator agent.Orchestrator
	Agent        *agent.Agent
}

// NewService creates a new router service.
func NewService(cfg Config) *Service {
	return &Service{
		guard:        cfg.Guard,
		interpreter:  cfg.Interpreter,
		completions:  cfg.Completions,
		orchestrator: cfg.Orchestrator,
		agent:        cfg.Agent,
	}
}

// Handle answers one query. The user always receives text: any fault that
// reaches the pipeline boundary, panics included, is rendered as
// "An error occurred: ...".
func (s *Service) Handle(ctx context.Context, query string) (answer string) {
	requestID := uuid.NewString()
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			slog.Error("chat pipeline panicked", "request_id", requestID, "cause", r)
			answer = fmt.Sprintf("An error occurred: %v", r)
		}
	}()

	verdict, err := s.guard.Check(ctx, query)
	if err != nil {
		slog.Error("classification failed", "request_id", requestID, "error", err)
		return fmt.Sprintf("An error occurred: %v", err)
	}

	// Fast path: a refusal in the structured verdict content is returned
	// verbatim before interpretation.
	if verdict != nil && verdict.Content != "" && s.interpreter.IsRefusal(verdict.Content) {
		slog.Debug("query refused",
			"request_id", requestID,
			"query", truncate(query, 50))
		return verdict.Content
	}

	category := s.interpreter.Classify(verdict)
	slog.Debug("query routed",
		"request_id", requestID,
		"query", truncate(query, 50),
		"category", category,
		"latency_ms", time.Since(start).Milliseconds())

	switch category {
	case guard.CategoryRefusal:
		return verdict.Text()
	case guard.CategoryNeedsSearch:
		return s.handleSearch(ctx, requestID, query)
	default:
		return s.completions.Completion(ctx, query)
	}
}

// handleSearch answers the query via the agent's structured search path.
// The query is bound into the context because the orchestration layer
// invokes tools without arguments.
func (s *Service) handleSearch(ctx context.Context, requestID, query string) string {
	ctx = tools.WithQuery(ctx, query)

	result, err := s.orchestrator.Run(ctx, s.agent, []ai.Message{ai.UserMessage(query)})
	if err != nil {
		slog.Error("agent run failed", "request_id", requestID, "error", err)
		return fmt.Sprintf("An error occurred: %v", err)
	}
	return result.LastContent()
}

// truncate truncates a string to maxLen characters.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// Ensure Service implements RouterService.
var _ RouterService = (*Service)(nil)

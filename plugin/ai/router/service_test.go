package router

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinemind/cinechat/plugin/ai"
	"github.com/cinemind/cinechat/plugin/ai/agent"
	"github.com/cinemind/cinechat/plugin/ai/agent/tools"
	"github.com/cinemind/cinechat/plugin/ai/cache"
	"github.com/cinemind/cinechat/plugin/ai/guard"
)

type recordingOrchestrator struct {
	lastQuery    string
	contextQuery string
	response     string
	panicWith    any
	calls        int
}

func (o *recordingOrchestrator) Run(ctx context.Context, _ *agent.Agent, messages []ai.Message) (*agent.RunResult, error) {
	o.calls++
	if o.panicWith != nil {
		panic(o.panicWith)
	}
	o.contextQuery = tools.QueryFromContext(ctx)
	if len(messages) > 0 {
		o.lastQuery = messages[len(messages)-1].Content
	}
	return &agent.RunResult{
		Messages: append(messages, ai.AssistantMessage(o.response)),
	}, nil
}

type testPipeline struct {
	classifier   *guard.MockClassifier
	llm          *ai.MockLLMService
	orchestrator *recordingOrchestrator
	service      *Service
}

func newTestPipeline() *testPipeline {
	classifier := guard.NewMockClassifier()
	llm := ai.NewMockLLMService()
	orchestrator := &recordingOrchestrator{response: "Here are some movie recommendations:\n- Heat (Relevance: 7.00)\n"}

	interpreter := guard.NewInterpreter(
		[]string{"cannot provide", "not able to provide"},
		[]string{"inform using singlestore", "delegate to agent"},
	)

	service := NewService(Config{
		Guard:        guard.NewService(classifier),
		Interpreter:  interpreter,
		Completions:  cache.NewCompletionService(llm, cache.DefaultCapacity),
		Orchestrator: orchestrator,
		Agent: &agent.Agent{
			Name:         "MovieRecommendationAgent",
			Instructions: "You are a helpful movie recommendation agent.",
		},
	})

	return &testPipeline{
		classifier:   classifier,
		llm:          llm,
		orchestrator: orchestrator,
		service:      service,
	}
}

func TestHandleRefusalReturnsVerdictVerbatim(t *testing.T) {
	p := newTestPipeline()
	refusal := "I cannot provide recommendations for that topic."
	p.classifier.SetVerdict("something disallowed", &guard.Verdict{Content: refusal})

	answer := p.service.Handle(context.Background(), "something disallowed")

	assert.Equal(t, refusal, answer)
	// Neither downstream path was reached.
	assert.Equal(t, 0, p.orchestrator.calls)
	assert.Equal(t, 0, p.llm.CallCount())
}

func TestHandleSearchPath(t *testing.T) {
	p := newTestPipeline()
	p.classifier.SetVerdict("recommend sci-fi movies", &guard.Verdict{Content: "delegate to agent"})

	answer := p.service.Handle(context.Background(), "recommend sci-fi movies")

	assert.Equal(t, p.orchestrator.response, answer)
	assert.Equal(t, 1, p.orchestrator.calls)
	assert.Equal(t, "recommend sci-fi movies", p.orchestrator.lastQuery)
	assert.Equal(t, "recommend sci-fi movies", p.orchestrator.contextQuery)
	assert.Equal(t, 0, p.llm.CallCount())
}

func TestHandleGeneralPath(t *testing.T) {
	p := newTestPipeline()
	p.classifier.SetVerdict("what year was cinema invented", &guard.Verdict{Content: "Cinema dates to the 1890s."})
	p.llm.SetResponse("what year was cinema invented", "The Lumiere brothers screened films in 1895.")

	answer := p.service.Handle(context.Background(), "what year was cinema invented")

	assert.Equal(t, "The Lumiere brothers screened films in 1895.", answer)
	assert.Equal(t, 0, p.orchestrator.calls)
}

func TestHandleRefusalInLastMessageShape(t *testing.T) {
	p := newTestPipeline()
	refusal := "I am not able to provide that."
	p.classifier.SetVerdict("edgy query", &guard.Verdict{
		LastMessage: &ai.Message{Role: "assistant", Content: refusal},
	})

	answer := p.service.Handle(context.Background(), "edgy query")

	assert.Equal(t, refusal, answer)
	assert.Equal(t, 0, p.orchestrator.calls)
	assert.Equal(t, 0, p.llm.CallCount())
}

func TestHandleClassifierFailure(t *testing.T) {
	p := newTestPipeline()
	p.classifier.SetError(errors.New("guardrails down"))

	answer := p.service.Handle(context.Background(), "anything")

	assert.Contains(t, answer, "An error occurred:")
	assert.Contains(t, answer, "guardrails down")
}

func TestHandleRecoversFromPanic(t *testing.T) {
	p := newTestPipeline()
	p.classifier.SetVerdict("recommend movies", &guard.Verdict{Content: "delegate to agent"})
	p.orchestrator.panicWith = "nil pointer somewhere deep"

	answer := p.service.Handle(context.Background(), "recommend movies")

	assert.Equal(t, "An error occurred: nil pointer somewhere deep", answer)
}

func TestHandleCachesRepeatedQueries(t *testing.T) {
	p := newTestPipeline()
	p.classifier.SetVerdict("tell me a joke", &guard.Verdict{Content: "sure, here is one"})
	p.llm.SetResponse("tell me a joke", "Why did the reel break? Too much tension.")

	first := p.service.Handle(context.Background(), "tell me a joke")
	second := p.service.Handle(context.Background(), "tell me a joke")

	assert.Equal(t, first, second)
	assert.Equal(t, 1, p.classifier.CallCount())
	assert.Equal(t, 1, p.llm.CallCount())
}

package guard

import (
	"context"

	"github.com/pkg/errors"

	"github.com/cinemind/cinechat/plugin/ai"
)

// classificationPrompt instructs the moderation model. The response phrasing
// is what the Interpreter's marker phrases are tuned against.
const classificationPrompt = `You are a content moderation and intent classifier for a movie recommendation assistant.

Given the user message, answer with exactly one of:
- A refusal starting with "I cannot provide" if the message asks for harmful, hateful or otherwise disallowed content.
- The phrase "delegate to agent" if the message asks for movie recommendations or movie lookups that the catalog can answer.
- A short direct answer for anything else.`

// LLMClassifier is a Classifier backed by an OpenAI-compatible chat model.
type LLMClassifier struct {
	llm ai.LLMService
}

// NewLLMClassifier creates a classifier around the given LLM service.
func NewLLMClassifier(llm ai.LLMService) *LLMClassifier {
	return &LLMClassifier{llm: llm}
}

// Classify sends the conversation to the moderation model and wraps the
// response as a structured verdict.
func (c *LLMClassifier) Classify(ctx context.Context, conversation []ai.Message) (*Verdict, error) {
	messages := make([]ai.Message, 0, len(conversation)+1)
	messages = append(messages, ai.SystemPrompt(classificationPrompt))
	messages = append(messages, conversation...)

	content, err := c.llm.Chat(ctx, messages)
	if err != nil {
		return nil, errors.Wrap(err, "classification failed")
	}

	return &Verdict{Content: content}, nil
}

// Ensure LLMClassifier implements Classifier.
var _ Classifier = (*LLMClassifier)(nil)

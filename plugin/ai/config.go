package ai

import (
	"time"

	"github.com/pkg/errors"

	"github.com/cinemind/cinechat/internal/profile"
)

// Config represents AI configuration.
type Config struct {
	LLM   LLMConfig
	Guard GuardConfig
}

// LLMConfig represents the completion provider configuration.
type LLMConfig struct {
	APIKey     string
	BaseURL    string
	Model      string        // gpt-3.5-turbo
	Timeout    time.Duration // default: 10s
	MaxRetries int           // default: 2
}

// GuardConfig represents the moderation classifier configuration.
type GuardConfig struct {
	Model          string
	RefusalMarkers []string
	SearchMarkers  []string
}

// NewConfigFromProfile creates AI config from the profile.
func NewConfigFromProfile(p *profile.Profile) *Config {
	return &Config{
		LLM: LLMConfig{
			APIKey:     p.LLMAPIKey,
			BaseURL:    p.LLMBaseURL,
			Model:      p.LLMModel,
			Timeout:    10 * time.Second,
			MaxRetries: 2,
		},
		Guard: GuardConfig{
			Model:          p.GuardModel,
			RefusalMarkers: p.RefusalMarkers,
			SearchMarkers:  p.SearchMarkers,
		},
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return errors.New("LLM API key is required")
	}
	if c.LLM.Model == "" {
		return errors.New("LLM model is required")
	}
	return nil
}

package profile

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Default marker phrases used to interpret classifier verdicts. The
// authoritative set is defined by the moderation policy the classifier is
// deployed with; these defaults match the current policy and can be
// overridden via environment variables.
var (
	defaultRefusalMarkers = []string{"cannot provide", "not able to provide"}
	defaultSearchMarkers  = []string{"inform using singlestore", "delegate to agent"}
)

// Profile is the configuration to start the cinechat server.
type Profile struct {
	// Mode can be "prod" or "dev" or "demo"
	Mode string
	// Addr is the binding address for the server
	Addr string
	// Port is the binding port for the server
	Port int
	// Version is the current version of the server
	Version string

	// Catalog database (SingleStore, MySQL wire protocol)
	DBHost     string // CINECHAT_DB_HOST (legacy: SINGLESTORE_HOST)
	DBPort     int    // CINECHAT_DB_PORT (default: 3306)
	DBUser     string // CINECHAT_DB_USER (legacy: SINGLESTORE_USER)
	DBPassword string // CINECHAT_DB_PASSWORD (legacy: SINGLESTORE_PASSWORD)
	DBName     string // CINECHAT_DB_NAME (legacy: SINGLESTORE_DATABASE)

	// LLM provider (OpenAI-compatible)
	LLMAPIKey  string // CINECHAT_OPENAI_API_KEY (legacy: OPENAI_API_KEY)
	LLMBaseURL string // CINECHAT_OPENAI_BASE_URL (default: https://api.openai.com/v1)
	LLMModel   string // CINECHAT_LLM_MODEL (default: gpt-3.5-turbo)

	// Moderation classifier
	GuardModel string // CINECHAT_GUARD_MODEL (defaults to LLMModel)

	// Marker phrases matched against verdict text. Comma-separated in env.
	RefusalMarkers []string // CINECHAT_REFUSAL_MARKERS
	SearchMarkers  []string // CINECHAT_SEARCH_MARKERS
}

func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

// getEnvWithFallback returns the preferred env value, falling back to the
// legacy variable name, then to the default.
func getEnvWithFallback(newKey, legacyKey, defaultValue string) string {
	if val := os.Getenv(newKey); val != "" {
		return val
	}
	if legacyKey != "" {
		if val := os.Getenv(legacyKey); val != "" {
			return val
		}
	}
	return defaultValue
}

// splitMarkers parses a comma-separated marker list, dropping empty items.
func splitMarkers(raw string) []string {
	if raw == "" {
		return nil
	}
	var markers []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			markers = append(markers, strings.ToLower(part))
		}
	}
	return markers
}

// FromEnv loads configuration from environment variables.
// Supports both CINECHAT_* (new) and SINGLESTORE_*/OPENAI_* (legacy) names.
func (p *Profile) FromEnv() {
	p.DBHost = getEnvWithFallback("CINECHAT_DB_HOST", "SINGLESTORE_HOST", p.DBHost)
	p.DBUser = getEnvWithFallback("CINECHAT_DB_USER", "SINGLESTORE_USER", p.DBUser)
	p.DBPassword = getEnvWithFallback("CINECHAT_DB_PASSWORD", "SINGLESTORE_PASSWORD", p.DBPassword)
	p.DBName = getEnvWithFallback("CINECHAT_DB_NAME", "SINGLESTORE_DATABASE", p.DBName)
	if raw := getEnvWithFallback("CINECHAT_DB_PORT", "SINGLESTORE_PORT", ""); raw != "" {
		if port, err := strconv.Atoi(raw); err == nil {
			p.DBPort = port
		}
	}

	p.LLMAPIKey = getEnvWithFallback("CINECHAT_OPENAI_API_KEY", "OPENAI_API_KEY", p.LLMAPIKey)
	p.LLMBaseURL = getEnvWithFallback("CINECHAT_OPENAI_BASE_URL", "OPENAI_BASE_URL", p.LLMBaseURL)
	p.LLMModel = getEnvWithFallback("CINECHAT_LLM_MODEL", "", p.LLMModel)
	p.GuardModel = getEnvWithFallback("CINECHAT_GUARD_MODEL", "", p.GuardModel)

	if markers := splitMarkers(os.Getenv("CINECHAT_REFUSAL_MARKERS")); len(markers) > 0 {
		p.RefusalMarkers = markers
	}
	if markers := splitMarkers(os.Getenv("CINECHAT_SEARCH_MARKERS")); len(markers) > 0 {
		p.SearchMarkers = markers
	}
}

// Validate normalizes the profile and applies defaults.
func (p *Profile) Validate() error {
	if p.Mode != "demo" && p.Mode != "dev" && p.Mode != "prod" {
		p.Mode = "demo"
	}

	if p.Port <= 0 || p.Port > 65535 {
		return errors.Errorf("invalid port: %d", p.Port)
	}

	if p.DBPort == 0 {
		p.DBPort = 3306
	}
	if p.LLMBaseURL == "" {
		p.LLMBaseURL = "https://api.openai.com/v1"
	}
	if p.LLMModel == "" {
		p.LLMModel = "gpt-3.5-turbo"
	}
	if p.GuardModel == "" {
		p.GuardModel = p.LLMModel
	}
	if len(p.RefusalMarkers) == 0 {
		p.RefusalMarkers = defaultRefusalMarkers
	}
	if len(p.SearchMarkers) == 0 {
		p.SearchMarkers = defaultSearchMarkers
	}

	return nil
}

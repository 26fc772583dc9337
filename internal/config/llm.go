package config

import "time"

// LLMConfig configures the text-generation provider.
type LLMConfig struct {
	Provider  string `yaml:"provider"` // anthropic, gemini
	APIKey    string `yaml:"api_key"`
	Model     string `yaml:"model"`
	BaseURL   string `yaml:"base_url"`
	Timeout   string `yaml:"timeout"`
	MaxTokens int    `yaml:"max_tokens"`
}

// DefaultLLMConfig returns sensible provider defaults. The API key always
// comes from the environment or the config file, never from code.
func DefaultLLMConfig() LLMConfig {
	return LLMConfig{
		Provider:  "anthropic",
		Timeout:   "10m",
		MaxTokens: 8192,
	}
}

// Validate checks the provider selection.
func (l LLMConfig) Validate() error {
	switch l.Provider {
	case "anthropic", "gemini":
		return nil
	default:
		return &UnknownProviderError{Provider: l.Provider}
	}
}

// GetTimeout returns the provider timeout as a duration.
func (l LLMConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(l.Timeout)
	if err != nil {
		return 10 * time.Minute
	}
	return d
}

// UnknownProviderError reports an unsupported llm.provider value.
type UnknownProviderError struct {
	Provider string
}

func (e *UnknownProviderError) Error() string {
	return "unknown llm provider: " + e.Provider
}

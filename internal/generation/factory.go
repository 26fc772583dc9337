package generation

import (
	"prdforge/internal/config"
	"prdforge/internal/logging"
)

// NewFromConfig builds the provider client selected by configuration.
// Blank model/base URL fields fall back to provider defaults.
func NewFromConfig(cfg config.LLMConfig) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Provider {
	case "gemini":
		gc := DefaultGeminiConfig(cfg.APIKey)
		if cfg.Model != "" {
			gc.Model = cfg.Model
		}
		if cfg.BaseURL != "" {
			gc.BaseURL = cfg.BaseURL
		}
		if cfg.MaxTokens > 0 {
			gc.MaxOutputTokens = cfg.MaxTokens
		}
		gc.Timeout = cfg.GetTimeout()
		logging.Boot("Generation provider: gemini model=%s", gc.Model)
		return NewGeminiClientWithConfig(gc), nil

	default: // anthropic, already validated
		ac := DefaultAnthropicConfig(cfg.APIKey)
		if cfg.Model != "" {
			ac.Model = cfg.Model
		}
		if cfg.BaseURL != "" {
			ac.BaseURL = cfg.BaseURL
		}
		if cfg.MaxTokens > 0 {
			ac.MaxTokens = cfg.MaxTokens
		}
		ac.Timeout = cfg.GetTimeout()
		logging.Boot("Generation provider: anthropic model=%s", ac.Model)
		return NewAnthropicClientWithConfig(ac), nil
	}
}

// Package config holds all prdforge configuration: YAML file with
// environment overrides, per-concern sub-configs, and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all prdforge configuration.
type Config struct {
	// LLM provider configuration
	LLM LLMConfig `yaml:"llm"`

	// HTTP server settings
	Server ServerConfig `yaml:"server"`

	// Session store settings
	Store StoreConfig `yaml:"store"`

	// Prompt pack settings
	Prompts PromptConfig `yaml:"prompts"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig configures the HTTP transport.
type ServerConfig struct {
	Addr            string `yaml:"addr"`
	ReferenceDir    string `yaml:"reference_dir"`    // folder of historical PRD .docx files
	MaxUploadBytes  int64  `yaml:"max_upload_bytes"` // multipart memory limit
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

// Session store backends.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// StoreConfig configures the session store backend.
type StoreConfig struct {
	Backend string `yaml:"backend"` // memory, sqlite
	Path    string `yaml:"path"`    // sqlite database path
}

// PromptConfig configures the instruction pack.
type PromptConfig struct {
	PackPath string `yaml:"pack_path"` // optional YAML pack overriding the built-in instructions
	Watch    bool   `yaml:"watch"`     // reload the pack on file change
}

// LoggingConfig configures the category debug logger.
type LoggingConfig struct {
	DebugMode bool   `yaml:"debug_mode"`
	Level     string `yaml:"level"`
	StateDir  string `yaml:"state_dir"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LLM: DefaultLLMConfig(),
		Server: ServerConfig{
			Addr:            ":3000",
			ReferenceDir:    "files",
			MaxUploadBytes:  32 << 20,
			ShutdownTimeout: "15s",
		},
		Store: StoreConfig{
			Backend: StoreMemory,
			Path:    ".prdforge/sessions.db",
		},
		Prompts: PromptConfig{},
		Logging: LoggingConfig{
			DebugMode: false,
			Level:     "info",
			StateDir:  ".prdforge",
		},
	}
}

// Load loads configuration from a YAML file, falling back to defaults when
// the file does not exist, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	// Provider API keys in priority order; the last one found wins,
	// matching the explicitness of a directly exported provider key.
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.LLM.APIKey = key
		c.LLM.Provider = "gemini"
	}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		c.LLM.APIKey = key
		c.LLM.Provider = "anthropic"
	}

	if addr := os.Getenv("PRDFORGE_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if dir := os.Getenv("PRDFORGE_REFERENCE_DIR"); dir != "" {
		c.Server.ReferenceDir = dir
	}
	if path := os.Getenv("PRDFORGE_DB"); path != "" {
		c.Store.Backend = StoreSQLite
		c.Store.Path = path
	}
	if pack := os.Getenv("PRDFORGE_PROMPT_PACK"); pack != "" {
		c.Prompts.PackPath = pack
	}
	if os.Getenv("PRDFORGE_DEBUG") == "1" {
		c.Logging.DebugMode = true
		c.Logging.Level = "debug"
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.LLM.Validate(); err != nil {
		return err
	}
	switch c.Store.Backend {
	case StoreMemory:
	case StoreSQLite:
		if c.Store.Path == "" {
			return fmt.Errorf("store: sqlite backend requires a path")
		}
	default:
		return fmt.Errorf("store: unknown backend %q", c.Store.Backend)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server: addr is required")
	}
	return nil
}

// GetShutdownTimeout returns the server shutdown timeout as a duration.
func (c ServerConfig) GetShutdownTimeout() time.Duration {
	d, err := time.ParseDuration(c.ShutdownTimeout)
	if err != nil {
		return 15 * time.Second
	}
	return d
}

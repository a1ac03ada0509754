// Package config loads judge configuration from file and environment.
//
// Precedence (highest to lowest):
//  1. Environment variables (AGENTMESH_JUDGE_* and provider key variables)
//  2. Config file
//  3. Built-in defaults
//
// Config file search order:
//  1. .agentmesh-judge.yaml in current directory
//  2. ~/.config/agentmesh-judge/config.yaml
//
// An unset API key is not an error: the judge degrades to heuristic
// evaluation when no credential is configured.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default endpoint and model for the direct API tier. OpenRouter speaks the
// OpenAI wire protocol, so the same client covers both providers.
const (
	DefaultBaseURL = "https://openrouter.ai/api/v1"
	DefaultModel   = "openai/gpt-4o-mini"

	DefaultAnthropicModel = "claude-haiku-4-5"

	DefaultMaxTokens   = 1024
	DefaultTemperature = 0.3
)

// Config holds all judge configuration.
type Config struct {
	// LLM settings for the direct API tier.
	Provider    string  `yaml:"provider"` // "openai" (OpenAI-compatible) or "anthropic"
	Model       string  `yaml:"model"`
	BaseURL     string  `yaml:"base_url"`
	APIKey      string  `yaml:"api_key"`
	MaxTokens   int64   `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`

	// FrameworkURL points at a specialized judge service. Empty means the
	// framework tier is unconfigured and evaluation degrades past it.
	FrameworkURL string `yaml:"framework_url"`

	// OTEL
	OTELEndpoint string `yaml:"otel_endpoint"`
	OTELHeaders  string `yaml:"otel_headers"` // Comma-separated key=value pairs

	// LogLevel controls stderr diagnostics: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// ConfigFile is the path of the config file that was loaded (empty if none).
	ConfigFile string `yaml:"-"`
}

// Defaults returns a Config with all default values.
func Defaults() *Config {
	return &Config{
		Provider:    "openai",
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
		LogLevel:    "warn",
	}
}

// Load reads configuration from file and environment variables.
// Environment variables always override file values. The API key may be
// empty after loading; that is the heuristic degradation signal, not an
// error.
func Load() (*Config, error) {
	cfg := Defaults()

	if path, data, err := findConfigFile(); err == nil {
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
		cfg.ConfigFile = path
		mergeFile(cfg, &fileCfg)
	}

	mergeEnv(cfg)
	applyProviderDefaults(cfg)

	if cfg.Provider != "openai" && cfg.Provider != "anthropic" {
		return nil, fmt.Errorf("unknown provider %q (supported: openai, anthropic)", cfg.Provider)
	}

	return cfg, nil
}

// findConfigFile searches for a config file and returns its path and contents.
func findConfigFile() (string, []byte, error) {
	if data, err := os.ReadFile(".agentmesh-judge.yaml"); err == nil {
		return ".agentmesh-judge.yaml", data, nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".config", "agentmesh-judge", "config.yaml")
		if data, err := os.ReadFile(path); err == nil {
			return path, data, nil
		}
	}

	return "", nil, fmt.Errorf("no config file found")
}

// mergeFile applies non-zero file values onto cfg.
func mergeFile(cfg *Config, file *Config) {
	if file.Provider != "" {
		cfg.Provider = file.Provider
	}
	if file.Model != "" {
		cfg.Model = file.Model
	}
	if file.BaseURL != "" {
		cfg.BaseURL = file.BaseURL
	}
	if file.APIKey != "" {
		cfg.APIKey = file.APIKey
	}
	if file.MaxTokens > 0 {
		cfg.MaxTokens = file.MaxTokens
	}
	if file.Temperature > 0 {
		cfg.Temperature = file.Temperature
	}
	if file.FrameworkURL != "" {
		cfg.FrameworkURL = file.FrameworkURL
	}
	if file.OTELEndpoint != "" {
		cfg.OTELEndpoint = file.OTELEndpoint
	}
	if file.OTELHeaders != "" {
		cfg.OTELHeaders = file.OTELHeaders
	}
	if file.LogLevel != "" {
		cfg.LogLevel = file.LogLevel
	}
}

// mergeEnv applies environment variables onto cfg. Env always wins.
func mergeEnv(cfg *Config) {
	if v := os.Getenv("AGENTMESH_JUDGE_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("AGENTMESH_JUDGE_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("AGENTMESH_JUDGE_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("AGENTMESH_JUDGE_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("AGENTMESH_JUDGE_FRAMEWORK_URL"); v != "" {
		cfg.FrameworkURL = v
	}
	if v := os.Getenv("AGENTMESH_JUDGE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		cfg.OTELEndpoint = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); v != "" {
		cfg.OTELHeaders = v
	}

	// Base URL override shared with other OpenAI-compatible tooling.
	if cfg.BaseURL == "" {
		if v := os.Getenv("OPENAI_API_BASE"); v != "" {
			cfg.BaseURL = v
		}
	}

	// Credential fallbacks, first match wins. An unset key is the signal
	// to degrade to heuristic evaluation, so no key is still valid config.
	if cfg.APIKey == "" {
		switch cfg.Provider {
		case "anthropic":
			cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		default:
			if v := os.Getenv("OPENAI_API_KEY"); v != "" {
				cfg.APIKey = v
			} else {
				cfg.APIKey = os.Getenv("OPENROUTER_API_KEY")
			}
		}
	}
}

// applyProviderDefaults fills the model and endpoint for the chosen provider.
// The Anthropic SDK has its own default base URL, so only the OpenAI path
// gets an explicit endpoint default.
func applyProviderDefaults(cfg *Config) {
	switch cfg.Provider {
	case "anthropic":
		if cfg.Model == "" {
			cfg.Model = DefaultAnthropicModel
		}
	default:
		if cfg.Model == "" {
			cfg.Model = DefaultModel
		}
		if cfg.BaseURL == "" {
			cfg.BaseURL = DefaultBaseURL
		}
	}
}

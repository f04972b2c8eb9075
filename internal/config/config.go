// Package config loads pitchsnitch configuration from file and environment.
//
// Precedence (highest to lowest):
//  1. Environment variables (PITCHSNITCH_*)
//  2. Config file
//  3. Built-in defaults
//
// Config file search order:
//  1. .pitchsnitch.yaml in current directory
//  2. ~/.config/pitchsnitch/config.yaml
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all pitchsnitch configuration.
type Config struct {
	// LLM settings
	Provider    string   `yaml:"provider"`
	Model       string   `yaml:"model"`
	BaseURL     string   `yaml:"base_url"`
	APIKey      string   `yaml:"api_key"`
	MaxTokens   int64    `yaml:"max_tokens"`
	Temperature *float64 `yaml:"temperature"`

	// UI
	Theme string `yaml:"theme"` // "dark" or "light"

	// OTEL
	OTELEndpoint string `yaml:"otel_endpoint"`
	OTELHeaders  string `yaml:"otel_headers"` // Comma-separated key=value pairs

	// ConfigFile is the path to the config file that was loaded (empty if none).
	ConfigFile string `yaml:"-"`
}

// DefaultAnthropicModel and DefaultOpenAIModel are used when no model is
// configured for the selected provider.
const (
	DefaultAnthropicModel = "claude-sonnet-4-5"
	DefaultOpenAIModel    = "gpt-4o-mini"
)

// DefaultTemperature keeps the coaching tone creative but not unhinged.
const DefaultTemperature = 0.7

// Defaults returns a Config with all default values.
func Defaults() *Config {
	temp := DefaultTemperature
	return &Config{
		Provider:    "anthropic",
		Model:       DefaultAnthropicModel,
		MaxTokens:   4096,
		Temperature: &temp,
		Theme:       "dark",
	}
}

// Load reads configuration from file and environment variables.
// Environment variables always override file values.
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

	if err := mergeEnv(cfg); err != nil {
		return nil, err
	}

	// A provider switch in file/env without an explicit model gets that
	// provider's default model, not the anthropic one.
	if cfg.Model == "" {
		cfg.Model = DefaultModelFor(cfg.Provider)
	}

	return cfg, nil
}

// DefaultModelFor returns the default model name for a provider.
func DefaultModelFor(provider string) string {
	if provider == "openai" {
		return DefaultOpenAIModel
	}
	return DefaultAnthropicModel
}

// findConfigFile searches for a config file and returns its path and contents.
func findConfigFile() (string, []byte, error) {
	// 1. Current directory
	if data, err := os.ReadFile(".pitchsnitch.yaml"); err == nil {
		return ".pitchsnitch.yaml", data, nil
	}

	// 2. XDG config dir / ~/.config
	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".config", "pitchsnitch", "config.yaml")
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
		cfg.Model = "" // re-resolved after env merge
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
	if file.Temperature != nil {
		cfg.Temperature = file.Temperature
	}
	if file.Theme != "" {
		cfg.Theme = file.Theme
	}
	if file.OTELEndpoint != "" {
		cfg.OTELEndpoint = file.OTELEndpoint
	}
	if file.OTELHeaders != "" {
		cfg.OTELHeaders = file.OTELHeaders
	}
}

// mergeEnv applies environment variables onto cfg. Env always wins.
func mergeEnv(cfg *Config) error {
	if v := os.Getenv("PITCHSNITCH_PROVIDER"); v != "" {
		cfg.Provider = v
		cfg.Model = ""
	}
	if v := os.Getenv("PITCHSNITCH_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("PITCHSNITCH_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("PITCHSNITCH_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("PITCHSNITCH_MAX_TOKENS"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid PITCHSNITCH_MAX_TOKENS %q: %w", v, err)
		}
		cfg.MaxTokens = n
	}
	if v := os.Getenv("PITCHSNITCH_TEMPERATURE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid PITCHSNITCH_TEMPERATURE %q: %w", v, err)
		}
		cfg.Temperature = &f
	}
	if v := os.Getenv("PITCHSNITCH_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		cfg.OTELEndpoint = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); v != "" {
		cfg.OTELHeaders = v
	}

	// API key fallbacks
	if cfg.APIKey == "" {
		if v := os.Getenv("AZURE_OPENAI_API_KEY"); v != "" {
			cfg.APIKey = v
		}
	}
	if cfg.APIKey == "" {
		switch cfg.Provider {
		case "openai":
			cfg.APIKey = os.Getenv("OPENAI_API_KEY")
		default:
			cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		}
	}

	// Azure base URL fallback
	if cfg.BaseURL == "" {
		if rn := os.Getenv("AZURE_RESOURCE_NAME"); rn != "" {
			switch cfg.Provider {
			case "anthropic":
				cfg.BaseURL = fmt.Sprintf("https://%s.services.ai.azure.com/anthropic/", rn)
			case "openai":
				cfg.BaseURL = fmt.Sprintf("https://%s.openai.azure.com/openai/v1", rn)
			}
		}
	}

	return nil
}

// ValidateCredential checks that an API key is present for the selected
// provider. Called before any analyzer is constructed so a missing
// credential stops the flow before any network call.
func ValidateCredential(cfg *Config) error {
	if cfg.APIKey != "" {
		return nil
	}
	var providerVar string
	switch cfg.Provider {
	case "openai":
		providerVar = "OPENAI_API_KEY"
	default:
		providerVar = "ANTHROPIC_API_KEY"
	}
	return fmt.Errorf("no API key found. Set PITCHSNITCH_API_KEY, AZURE_OPENAI_API_KEY, or %s", providerVar)
}

// IsAzureEndpoint returns true if the URL is an Azure endpoint.
func IsAzureEndpoint(url string) bool {
	return strings.Contains(url, ".azure.com") || strings.Contains(url, ".azure.us")
}

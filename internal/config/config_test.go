package config

import (
	"os"
	"strings"
	"testing"
)

// clearEnv blanks every variable Load consults so host state cannot leak
// into the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PITCHSNITCH_PROVIDER", "PITCHSNITCH_MODEL", "PITCHSNITCH_BASE_URL",
		"PITCHSNITCH_API_KEY", "PITCHSNITCH_MAX_TOKENS", "PITCHSNITCH_TEMPERATURE",
		"PITCHSNITCH_THEME", "OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_EXPORTER_OTLP_HEADERS",
		"AZURE_OPENAI_API_KEY", "AZURE_RESOURCE_NAME",
		"ANTHROPIC_API_KEY", "OPENAI_API_KEY",
	} {
		t.Setenv(key, "")
	}
	// Keep a real ~/.config/pitchsnitch/config.yaml out of the picture.
	t.Setenv("HOME", t.TempDir())
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.Provider != "anthropic" {
		t.Errorf("Provider = %q, want anthropic", cfg.Provider)
	}
	if cfg.Model != DefaultAnthropicModel {
		t.Errorf("Model = %q, want %q", cfg.Model, DefaultAnthropicModel)
	}
	if cfg.MaxTokens != 4096 {
		t.Errorf("MaxTokens = %d, want 4096", cfg.MaxTokens)
	}
	if cfg.Temperature == nil || *cfg.Temperature != DefaultTemperature {
		t.Errorf("Temperature = %v, want %v", cfg.Temperature, DefaultTemperature)
	}
	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q, want dark", cfg.Theme)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	t.Setenv("PITCHSNITCH_PROVIDER", "openai")
	t.Setenv("PITCHSNITCH_API_KEY", "sk-test")
	t.Setenv("PITCHSNITCH_MAX_TOKENS", "8192")
	t.Setenv("PITCHSNITCH_TEMPERATURE", "0.2")
	t.Setenv("PITCHSNITCH_THEME", "light")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q, want openai", cfg.Provider)
	}
	// Provider switch without an explicit model resolves that provider's default.
	if cfg.Model != DefaultOpenAIModel {
		t.Errorf("Model = %q, want %q", cfg.Model, DefaultOpenAIModel)
	}
	if cfg.APIKey != "sk-test" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
	if cfg.MaxTokens != 8192 {
		t.Errorf("MaxTokens = %d, want 8192", cfg.MaxTokens)
	}
	if cfg.Temperature == nil || *cfg.Temperature != 0.2 {
		t.Errorf("Temperature = %v, want 0.2", cfg.Temperature)
	}
	if cfg.Theme != "light" {
		t.Errorf("Theme = %q, want light", cfg.Theme)
	}
}

func TestLoadInvalidEnvNumbers(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	t.Setenv("PITCHSNITCH_MAX_TOKENS", "lots")
	if _, err := Load(); err == nil {
		t.Error("Load() should fail on non-numeric PITCHSNITCH_MAX_TOKENS")
	}

	t.Setenv("PITCHSNITCH_MAX_TOKENS", "")
	t.Setenv("PITCHSNITCH_TEMPERATURE", "warm")
	if _, err := Load(); err == nil {
		t.Error("Load() should fail on non-numeric PITCHSNITCH_TEMPERATURE")
	}
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)

	yaml := "provider: openai\nmodel: gpt-4.1\napi_key: file-key\ntheme: light\nmax_tokens: 2000\n"
	if err := os.WriteFile(".pitchsnitch.yaml", []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ConfigFile != ".pitchsnitch.yaml" {
		t.Errorf("ConfigFile = %q", cfg.ConfigFile)
	}
	if cfg.Provider != "openai" || cfg.Model != "gpt-4.1" {
		t.Errorf("Provider/Model = %q/%q", cfg.Provider, cfg.Model)
	}
	if cfg.APIKey != "file-key" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
	if cfg.MaxTokens != 2000 {
		t.Errorf("MaxTokens = %d, want 2000", cfg.MaxTokens)
	}
}

func TestEnvBeatsFile(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	yaml := "provider: openai\napi_key: file-key\n"
	if err := os.WriteFile(".pitchsnitch.yaml", []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PITCHSNITCH_PROVIDER", "anthropic")
	t.Setenv("PITCHSNITCH_API_KEY", "env-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Provider != "anthropic" {
		t.Errorf("Provider = %q, env should beat file", cfg.Provider)
	}
	if cfg.Model != DefaultAnthropicModel {
		t.Errorf("Model = %q, want provider default after env switch", cfg.Model)
	}
	if cfg.APIKey != "env-key" {
		t.Errorf("APIKey = %q, env should beat file", cfg.APIKey)
	}
}

func TestAPIKeyFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		set      map[string]string
		want     string
	}{
		{
			name:     "azure key for any provider",
			provider: "anthropic",
			set:      map[string]string{"AZURE_OPENAI_API_KEY": "az-key", "ANTHROPIC_API_KEY": "ant-key"},
			want:     "az-key",
		},
		{
			name:     "anthropic key for anthropic",
			provider: "anthropic",
			set:      map[string]string{"ANTHROPIC_API_KEY": "ant-key", "OPENAI_API_KEY": "oa-key"},
			want:     "ant-key",
		},
		{
			name:     "openai key for openai",
			provider: "openai",
			set:      map[string]string{"ANTHROPIC_API_KEY": "ant-key", "OPENAI_API_KEY": "oa-key"},
			want:     "oa-key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Chdir(t.TempDir())
			t.Setenv("PITCHSNITCH_PROVIDER", tt.provider)
			for k, v := range tt.set {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.APIKey != tt.want {
				t.Errorf("APIKey = %q, want %q", cfg.APIKey, tt.want)
			}
		})
	}
}

func TestAzureBaseURLDerivation(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("AZURE_RESOURCE_NAME", "myres")
	t.Setenv("AZURE_OPENAI_API_KEY", "az-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BaseURL != "https://myres.services.ai.azure.com/anthropic/" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}

	t.Setenv("PITCHSNITCH_PROVIDER", "openai")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BaseURL != "https://myres.openai.azure.com/openai/v1" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
}

func TestValidateCredential(t *testing.T) {
	if err := ValidateCredential(&Config{Provider: "anthropic", APIKey: "k"}); err != nil {
		t.Errorf("ValidateCredential with key = %v, want nil", err)
	}

	err := ValidateCredential(&Config{Provider: "anthropic"})
	if err == nil {
		t.Fatal("ValidateCredential without key should fail")
	}
	if !strings.Contains(err.Error(), "ANTHROPIC_API_KEY") {
		t.Errorf("error %q should name ANTHROPIC_API_KEY", err)
	}

	err = ValidateCredential(&Config{Provider: "openai"})
	if err == nil || !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		t.Errorf("error %v should name OPENAI_API_KEY", err)
	}
}

func TestIsAzureEndpoint(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://myres.services.ai.azure.com/anthropic/", true},
		{"https://myres.openai.azure.us/openai/v1", true},
		{"https://api.anthropic.com", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsAzureEndpoint(tt.url); got != tt.want {
			t.Errorf("IsAzureEndpoint(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}

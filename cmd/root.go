package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/geetanshi0205/pitchsnitch/internal/analyzer"
	"github.com/geetanshi0205/pitchsnitch/internal/config"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

var (
	// Global flags. Highest-precedence overrides on top of env and config file.
	flagProvider    string
	flagModel       string
	flagBaseURL     string
	flagAPIKey      string
	flagMaxTokens   int64
	flagTemperature float64
)

var rootCmd = &cobra.Command{
	Use:   "pitchsnitch",
	Short: "Turn a raw hackathon idea into a scored, judge-ready strategy",
	Long: `pitchsnitch evaluates a hackathon idea with an LLM mentor.

You describe the idea, the target users, the time available, the team
size, and your goals. pitchsnitch sends one request to an LLM (Anthropic
or OpenAI) with a fixed evaluation prompt, parses the structured reply,
and shows a report: eight 0-5 dimension scores, risk flags, a build
checklist, tech-stack suggestions, and a 5-slide pitch deck outline.

Run "pitchsnitch coach" for the interactive form, or "pitchsnitch analyze"
for a one-shot JSON analysis.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagProvider, "provider", "", "LLM provider: anthropic, openai (default: anthropic)")
	rootCmd.PersistentFlags().StringVar(&flagModel, "model", "", "LLM model name (default: claude-sonnet-4-5 for anthropic, gpt-4o-mini for openai)")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "override LLM API base URL")
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "override LLM API key")
	rootCmd.PersistentFlags().Int64Var(&flagMaxTokens, "max-tokens", 0, "max completion tokens (default: 4096; increase for reasoning models)")
	rootCmd.PersistentFlags().Float64Var(&flagTemperature, "temperature", -1, "sampling temperature (default: 0.7)")
}

// loadConfig resolves configuration: defaults -> config file -> env -> flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagProvider != "" {
		cfg.Provider = flagProvider
		if flagModel == "" {
			cfg.Model = config.DefaultModelFor(flagProvider)
		}
	}
	if flagModel != "" {
		cfg.Model = flagModel
	}
	if flagBaseURL != "" {
		cfg.BaseURL = flagBaseURL
	}
	if flagAPIKey != "" {
		cfg.APIKey = flagAPIKey
	}
	if flagMaxTokens > 0 {
		cfg.MaxTokens = flagMaxTokens
	}
	if flagTemperature >= 0 {
		t := flagTemperature
		cfg.Temperature = &t
	}
	return cfg, nil
}

// newAnalyzer builds the configured LLM analyzer. A missing credential is
// reported here, before any network call is attempted.
func newAnalyzer(cfg *config.Config) (analyzer.Analyzer, error) {
	if err := config.ValidateCredential(cfg); err != nil {
		return nil, analyzer.ConfigError(err)
	}

	temperature := config.DefaultTemperature
	if cfg.Temperature != nil {
		temperature = *cfg.Temperature
	}

	// Azure AI Foundry needs the "api-key" header in addition to the SDK default.
	extraHeaders := map[string]string{}
	if os.Getenv("AZURE_RESOURCE_NAME") != "" || config.IsAzureEndpoint(cfg.BaseURL) {
		extraHeaders["api-key"] = cfg.APIKey
	}

	switch cfg.Provider {
	case "anthropic":
		return analyzer.NewAnthropicAnalyzer(analyzer.AnthropicConfig{
			BaseURL:      cfg.BaseURL,
			APIKey:       cfg.APIKey,
			Model:        cfg.Model,
			MaxTokens:    cfg.MaxTokens,
			Temperature:  temperature,
			ExtraHeaders: extraHeaders,
		}), nil
	case "openai":
		return analyzer.NewOpenAIAnalyzer(analyzer.OpenAIConfig{
			BaseURL:      cfg.BaseURL,
			APIKey:       cfg.APIKey,
			Model:        cfg.Model,
			MaxTokens:    cfg.MaxTokens,
			Temperature:  temperature,
			ExtraHeaders: extraHeaders,
		}), nil
	default:
		return nil, analyzer.ConfigError(fmt.Errorf("unknown provider %q (supported: anthropic, openai)", cfg.Provider))
	}
}

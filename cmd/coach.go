package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/geetanshi0205/pitchsnitch/internal/coach"
	"github.com/geetanshi0205/pitchsnitch/internal/telemetry"
)

var flagTheme string

var coachCmd = &cobra.Command{
	Use:   "coach",
	Short: "Interactive form to analyze a hackathon idea",
	Long: `Launch the interactive coach: fill in the idea form, submit, and read
the rendered report (scores, risks, checklist, tech stack, pitch deck).

Configuration is loaded from .pitchsnitch.yaml or environment variables.
See the README for all configuration options.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCoach(cmd)
	},
}

func init() {
	coachCmd.Flags().StringVar(&flagTheme, "theme", "",
		"Color theme: dark, light")
	rootCmd.AddCommand(coachCmd)
}

func runCoach(cmd *cobra.Command) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel() // cancels an in-flight analysis when the TUI exits

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if cfg.ConfigFile != "" {
		fmt.Fprintf(os.Stderr, "config: loaded %s\n", cfg.ConfigFile)
	}

	// A missing credential stops here, before the form is even shown.
	a, err := newAnalyzer(cfg)
	if err != nil {
		return err
	}

	// Wire build version into OTEL service metadata
	telemetry.Version = Version

	// Initialize OTEL (no-op if no endpoint configured)
	tel, err := telemetry.Init(ctx, telemetry.Config{
		Endpoint: cfg.OTELEndpoint,
		Headers:  cfg.OTELHeaders,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: otel init failed: %v\n", err)
	}
	if tel != nil {
		defer tel.Shutdown(ctx)
	}

	// Group all analyses from this coach session under one session ID
	sessionID := fmt.Sprintf("ps-%d-%d", os.Getpid(), time.Now().Unix())

	var metrics *telemetry.Metrics
	if tel != nil {
		metrics = tel.Metrics
	}

	runner := &coach.Runner{
		Analyzer:  a,
		Metrics:   metrics,
		SessionID: sessionID,
	}

	theme := flagTheme
	if theme == "" {
		theme = cfg.Theme
	}

	tui := &coach.TUI{
		Runner:    runner,
		ThemeName: theme,
	}

	return tui.Run(ctx)
}

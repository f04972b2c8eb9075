package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/geetanshi0205/pitchsnitch/internal/coach"
	"github.com/geetanshi0205/pitchsnitch/internal/model"
	"github.com/geetanshi0205/pitchsnitch/internal/telemetry"
)

var (
	flagIdea  string
	flagUsers string
	flagHours int
	flagTeam  int
	flagGoals string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "One-shot idea analysis, JSON output",
	Long: `Analyze a hackathon idea non-interactively and print the full analysis
record as JSON on stdout.

The command exits non-zero only for configuration problems (missing API
key, unknown provider). Transport and parse failures still print the
empty sentinel result, with the failure noted in the "error" field and a
warning on stderr.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}

		a, err := newAnalyzer(cfg)
		if err != nil {
			return err
		}

		if flagIdea == "" || flagUsers == "" || flagGoals == "" {
			return fmt.Errorf("--idea, --users, and --goals are required")
		}

		telemetry.Version = Version
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

		var metrics *telemetry.Metrics
		if tel != nil {
			metrics = tel.Metrics
		}

		runner := &coach.Runner{
			Analyzer:  a,
			Metrics:   metrics,
			SessionID: fmt.Sprintf("ps-%d-%d", os.Getpid(), time.Now().Unix()),
		}

		analysis := runner.Run(ctx, model.IdeaInput{
			Idea:           flagIdea,
			TargetUsers:    flagUsers,
			TimeConstraint: flagHours,
			TeamSize:       flagTeam,
			Goals:          flagGoals,
		})

		if analysis.Failed() {
			fmt.Fprintf(os.Stderr, "warning: %s\n", analysis.Err)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(analysis)
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&flagIdea, "idea", "", "the hackathon idea to analyze")
	analyzeCmd.Flags().StringVar(&flagUsers, "users", "", "who the idea is for")
	analyzeCmd.Flags().IntVar(&flagHours, "hours", model.DefaultTimeConstraint, "time available in hours (24, 36, 48, 60, 72)")
	analyzeCmd.Flags().IntVar(&flagTeam, "team", model.DefaultTeamSize, "team size (1-6)")
	analyzeCmd.Flags().StringVar(&flagGoals, "goals", "", "goals for the hackathon")
	rootCmd.AddCommand(analyzeCmd)
}

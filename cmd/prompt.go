package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geetanshi0205/pitchsnitch/internal/analyzer"
	"github.com/geetanshi0205/pitchsnitch/internal/model"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the rendered evaluation prompt without calling any API",
	Long: `Render the exact prompt that "analyze" would send to the LLM for the
given inputs and print it to stdout. Useful for inspecting the prompt
contract; no network call is made and no API key is needed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt := analyzer.BuildPrompt(model.IdeaInput{
			Idea:           flagIdea,
			TargetUsers:    flagUsers,
			TimeConstraint: flagHours,
			TeamSize:       flagTeam,
			Goals:          flagGoals,
		})
		fmt.Println(analyzer.SystemPrompt)
		fmt.Println("---")
		fmt.Println(prompt)
		return nil
	},
}

func init() {
	promptCmd.Flags().StringVar(&flagIdea, "idea", "", "the hackathon idea")
	promptCmd.Flags().StringVar(&flagUsers, "users", "", "who the idea is for")
	promptCmd.Flags().IntVar(&flagHours, "hours", model.DefaultTimeConstraint, "time available in hours")
	promptCmd.Flags().IntVar(&flagTeam, "team", model.DefaultTeamSize, "team size")
	promptCmd.Flags().StringVar(&flagGoals, "goals", "", "goals for the hackathon")
	rootCmd.AddCommand(promptCmd)
}

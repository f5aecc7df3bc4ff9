package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coralcrm/copilot/pkg/intent"
	"github.com/coralcrm/copilot/pkg/presenter"
)

type SuggestConfig struct {
	HasEntities bool
	JSON        bool
}

func NewSuggestConfig() *SuggestConfig {
	return &SuggestConfig{
		HasEntities: false,
		JSON:        false,
	}
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <text>",
	Short: "Suggest a skill command for free-text input",
	Long: `Run the intent detector against free-text input and print the best
matching skill command, if any.

Examples:
  copilot suggest "can you draft a proposal for Acme"
  copilot suggest --has-entities "chase this deal, they ghosted us"
  copilot suggest --json "recap the quarter"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := getSuggestConfigFromFlags(cmd)
		runSuggest(cmd, strings.Join(args, " "), config)
	},
}

func init() {
	defaults := NewSuggestConfig()
	suggestCmd.Flags().Bool("has-entities", defaults.HasEntities, "The message already references concrete CRM records")
	suggestCmd.Flags().Bool("json", defaults.JSON, "Print the suggestion as JSON")
	rootCmd.AddCommand(suggestCmd)
}

func getSuggestConfigFromFlags(cmd *cobra.Command) *SuggestConfig {
	config := NewSuggestConfig()
	if hasEntities, err := cmd.Flags().GetBool("has-entities"); err == nil {
		config.HasEntities = hasEntities
	}
	if jsonOut, err := cmd.Flags().GetBool("json"); err == nil {
		config.JSON = jsonOut
	}
	return config
}

func runSuggest(cmd *cobra.Command, text string, config *SuggestConfig) {
	reg, err := buildRegistry(cmd.Context())
	if err != nil {
		presenter.Error(err, "failed to load skills")
		os.Exit(1)
	}

	suggestion := intent.NewDetector(reg).Detect(text, config.HasEntities)

	if config.JSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(suggestion); err != nil {
			presenter.Error(err, "failed to encode suggestion")
			os.Exit(1)
		}
		return
	}

	if suggestion == nil {
		presenter.Info("No suggestion.")
		return
	}
	presenter.Info(fmt.Sprintf("%s  (confidence %.2f)", suggestion.DisplayText, suggestion.Confidence))
}

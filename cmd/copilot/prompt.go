package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/coralcrm/copilot/pkg/command"
	"github.com/coralcrm/copilot/pkg/presenter"
	"github.com/coralcrm/copilot/pkg/prompt"
)

type PromptConfig struct {
	Skill       string
	Entities    []string
	ContextFile string
}

func NewPromptConfig() *PromptConfig {
	return &PromptConfig{
		Skill:       "",
		Entities:    []string{},
		ContextFile: "",
	}
}

var promptCmd = &cobra.Command{
	Use:   "prompt <text>",
	Short: "Build the executor prompt for a skill command",
	Long: `Parse a skill command invocation, validate its entities, and print
the assembled executor prompt to stdout.

The optional --context-file carries the entity context block, already
formatted by the caller; it is embedded verbatim.

Examples:
  copilot prompt --skill proposal --entity deal:d_42:"Acme renewal" "emphasize onboarding"
  copilot prompt --skill summary --entity company:co_1:Acme --context-file acme.txt`,
	Run: func(cmd *cobra.Command, args []string) {
		config := getPromptConfigFromFlags(cmd)
		runPrompt(cmd, strings.Join(args, " "), config)
	},
}

func init() {
	defaults := NewPromptConfig()
	promptCmd.Flags().StringP("skill", "s", defaults.Skill, "Skill command to run (with or without the leading slash)")
	promptCmd.Flags().StringArrayP("entity", "e", defaults.Entities, "Attached entity as type:id:name (repeatable)")
	promptCmd.Flags().StringP("context-file", "c", defaults.ContextFile, "File containing the entity context block")
	promptCmd.MarkFlagRequired("skill")
	rootCmd.AddCommand(promptCmd)
}

func getPromptConfigFromFlags(cmd *cobra.Command) *PromptConfig {
	config := NewPromptConfig()
	if skill, err := cmd.Flags().GetString("skill"); err == nil {
		config.Skill = skill
	}
	if entities, err := cmd.Flags().GetStringArray("entity"); err == nil {
		config.Entities = entities
	}
	if contextFile, err := cmd.Flags().GetString("context-file"); err == nil {
		config.ContextFile = contextFile
	}
	return config
}

func runPrompt(cmd *cobra.Command, text string, config *PromptConfig) {
	reg, err := buildRegistry(cmd.Context())
	if err != nil {
		presenter.Error(err, "failed to load skills")
		os.Exit(1)
	}

	entities, err := parseEntitySpecs(config.Entities)
	if err != nil {
		presenter.Error(err, "invalid --entity flag")
		os.Exit(1)
	}

	parsed := command.Parse(command.Payload{
		SkillCommand: config.Skill,
		Text:         text,
		Entities:     entities,
	})
	if parsed == nil {
		presenter.Error(errors.New("no skill command declared"), "")
		os.Exit(1)
	}

	if verr := command.Validate(reg, parsed.Command, parsed.Entities); verr != nil {
		presenter.Error(verr, string(verr.Kind))
		os.Exit(1)
	}

	entityContext := ""
	if config.ContextFile != "" {
		content, err := os.ReadFile(config.ContextFile)
		if err != nil {
			presenter.Error(errors.Wrap(err, "failed to read context file"), "")
			os.Exit(1)
		}
		entityContext = string(content)
	}

	fmt.Println(prompt.Build(parsed, entityContext))
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coralcrm/copilot/pkg/command"
	"github.com/coralcrm/copilot/pkg/presenter"
)

type ValidateConfig struct {
	Skill    string
	Entities []string
}

func NewValidateConfig() *ValidateConfig {
	return &ValidateConfig{
		Skill:    "",
		Entities: []string{},
	}
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a skill command against its entity requirements",
	Long: `Check whether the attached entities satisfy the skill's entity
requirements. Exits non-zero with the validation message on failure.

Examples:
  copilot validate --skill proposal --entity deal:d_42:"Acme renewal"
  copilot validate --skill handoff --entity contact:c_7:Jo --entity deal:d_42:Renewal`,
	Run: func(cmd *cobra.Command, _ []string) {
		config := getValidateConfigFromFlags(cmd)
		runValidate(cmd, config)
	},
}

func init() {
	defaults := NewValidateConfig()
	validateCmd.Flags().StringP("skill", "s", defaults.Skill, "Skill command to validate (with or without the leading slash)")
	validateCmd.Flags().StringArrayP("entity", "e", defaults.Entities, "Attached entity as type:id:name (repeatable)")
	validateCmd.MarkFlagRequired("skill")
	rootCmd.AddCommand(validateCmd)
}

func getValidateConfigFromFlags(cmd *cobra.Command) *ValidateConfig {
	config := NewValidateConfig()
	if skill, err := cmd.Flags().GetString("skill"); err == nil {
		config.Skill = skill
	}
	if entities, err := cmd.Flags().GetStringArray("entity"); err == nil {
		config.Entities = entities
	}
	return config
}

func runValidate(cmd *cobra.Command, config *ValidateConfig) {
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

	if verr := command.Validate(reg, config.Skill, entities); verr != nil {
		presenter.Error(verr, string(verr.Kind))
		os.Exit(1)
	}

	presenter.Success(fmt.Sprintf("/%s is ready to run", config.Skill))
}

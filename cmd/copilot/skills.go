package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/coralcrm/copilot/pkg/presenter"
	"github.com/coralcrm/copilot/pkg/skills"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Inspect the skill table",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

var skillsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all skills with their keywords and entity requirements",
	Run: func(cmd *cobra.Command, _ []string) {
		listSkills(cmd)
	},
}

func init() {
	skillsCmd.AddCommand(skillsListCmd)
	rootCmd.AddCommand(skillsCmd)
}

func listSkills(cmd *cobra.Command) {
	reg, err := buildRegistry(cmd.Context())
	if err != nil {
		presenter.Error(err, "failed to load skills")
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "COMMAND\tNAME\tREQUIRES\tKEYWORDS")
	for _, skill := range reg.All() {
		req, _ := reg.Requirement(skill.Command)
		fmt.Fprintf(w, "/%s\t%s\t%s\t%s\n",
			skill.Command,
			skill.DisplayName,
			formatRequirement(req),
			strings.Join(skill.Keywords, ", "),
		)
	}
	w.Flush()
}

// formatRequirement renders required groups as "contact + company|deal".
func formatRequirement(req *skills.Requirement) string {
	if req == nil || len(req.RequiredGroups) == 0 {
		return "-"
	}
	groups := make([]string, 0, len(req.RequiredGroups))
	for _, group := range req.RequiredGroups {
		names := make([]string, 0, len(group))
		for _, t := range group {
			names = append(names, string(t))
		}
		groups = append(groups, strings.Join(names, "|"))
	}
	return strings.Join(groups, " + ")
}

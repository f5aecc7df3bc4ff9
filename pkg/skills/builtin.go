package skills

import (
	_ "embed"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Embedded builtin skill table. Loaded once per registry; never mutated.
//
//go:embed builtin/skills.yaml
var builtinSkillsYAML []byte

type builtinTable struct {
	Skills []skillEntry `yaml:"skills"`
}

// skillEntry is the on-disk shape of a skill definition. Requirement
// groups are written as pipe-separated type lists, e.g. "company|deal".
type skillEntry struct {
	Command     string   `yaml:"command"`
	DisplayName string   `yaml:"display_name"`
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
	Requires    []string `yaml:"requires"`
	Optional    []string `yaml:"optional"`
}

func (e *skillEntry) toSkill() (*Skill, *Requirement, error) {
	command := strings.ToLower(strings.TrimSpace(e.Command))
	if command == "" {
		return nil, nil, errors.New("skill entry is missing a command")
	}
	if len(e.Keywords) == 0 {
		return nil, nil, errors.Errorf("skill '%s' has no keywords", command)
	}

	keywords := make([]string, 0, len(e.Keywords))
	for _, kw := range e.Keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			return nil, nil, errors.Errorf("skill '%s' has an empty keyword", command)
		}
		keywords = append(keywords, kw)
	}

	req := &Requirement{}
	for _, raw := range e.Requires {
		group, err := parseTypeGroup(raw)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "skill '%s'", command)
		}
		req.RequiredGroups = append(req.RequiredGroups, group)
	}
	for _, raw := range e.Optional {
		t := EntityType(strings.ToLower(strings.TrimSpace(raw)))
		if !ValidEntityType(t) {
			return nil, nil, errors.Errorf("skill '%s' has unknown optional entity type '%s'", command, raw)
		}
		req.OptionalTypes = append(req.OptionalTypes, t)
	}

	skill := &Skill{
		Command:     command,
		DisplayName: strings.TrimSpace(e.DisplayName),
		Description: strings.TrimSpace(e.Description),
		Keywords:    keywords,
	}
	return skill, req, nil
}

// parseTypeGroup parses a pipe-separated OR-group of entity types.
func parseTypeGroup(raw string) ([]EntityType, error) {
	var group []EntityType
	for _, part := range strings.Split(raw, "|") {
		t := EntityType(strings.ToLower(strings.TrimSpace(part)))
		if !ValidEntityType(t) {
			return nil, errors.Errorf("unknown entity type '%s' in requirement group '%s'", part, raw)
		}
		group = append(group, t)
	}
	if len(group) == 0 {
		return nil, errors.Errorf("empty requirement group '%s'", raw)
	}
	return group, nil
}

func loadBuiltins() ([]*Skill, []*Requirement, error) {
	var table builtinTable
	if err := yaml.Unmarshal(builtinSkillsYAML, &table); err != nil {
		return nil, nil, errors.Wrap(err, "failed to parse builtin skill table")
	}

	skills := make([]*Skill, 0, len(table.Skills))
	reqs := make([]*Requirement, 0, len(table.Skills))
	for i := range table.Skills {
		skill, req, err := table.Skills[i].toSkill()
		if err != nil {
			return nil, nil, errors.Wrap(err, "invalid builtin skill table")
		}
		skills = append(skills, skill)
		reqs = append(reqs, req)
	}
	return skills, reqs, nil
}

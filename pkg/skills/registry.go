package skills

import (
	"strings"

	"github.com/pkg/errors"
)

// Registry holds the skill table in a fixed order. Order is load-bearing:
// intent detection breaks confidence ties in favor of the earlier skill,
// so the registry keeps an ordered slice beside the lookup maps.
//
// A registry is built once at startup and read-only afterwards; it is
// safe for concurrent use without synchronization.
type Registry struct {
	order  []*Skill
	byName map[string]*Skill
	reqs   map[string]*Requirement
}

// NewRegistry builds a registry containing the builtin skill table.
func NewRegistry() (*Registry, error) {
	skills, reqs, err := loadBuiltins()
	if err != nil {
		return nil, err
	}

	r := &Registry{
		byName: make(map[string]*Skill, len(skills)),
		reqs:   make(map[string]*Requirement, len(skills)),
	}
	for i, skill := range skills {
		if err := r.Register(skill, reqs[i]); err != nil {
			return nil, errors.Wrap(err, "invalid builtin skill table")
		}
	}
	return r, nil
}

// Register appends a skill to the table. The command must not already be
// registered; builtins always win over later additions.
func (r *Registry) Register(skill *Skill, req *Requirement) error {
	command := strings.ToLower(skill.Command)
	if command == "" {
		return errors.New("skill command must not be empty")
	}
	if _, exists := r.byName[command]; exists {
		return errors.Errorf("skill '%s' is already registered", command)
	}
	if req == nil {
		req = &Requirement{}
	}

	r.order = append(r.order, skill)
	r.byName[command] = skill
	r.reqs[command] = req
	return nil
}

// Lookup returns the skill for a command.
func (r *Registry) Lookup(command string) (*Skill, bool) {
	skill, ok := r.byName[strings.ToLower(command)]
	return skill, ok
}

// Requirement returns the entity requirement for a command.
func (r *Registry) Requirement(command string) (*Requirement, bool) {
	req, ok := r.reqs[strings.ToLower(command)]
	return req, ok
}

// All returns the skills in table order. The returned slice must not be
// mutated.
func (r *Registry) All() []*Skill {
	return r.order
}

// Len returns the number of registered skills.
func (r *Registry) Len() int {
	return len(r.order)
}

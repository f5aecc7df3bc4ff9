// Package skills defines the skill taxonomy for the copilot command
// pipeline: the entity types a skill can work with, the static table of
// builtin skills with their trigger keywords, and the per-skill entity
// requirements. Custom skills can be discovered from SKILL.md files and
// registered alongside the builtins.
package skills

// EntityType identifies the kind of CRM record an entity reference
// points at.
type EntityType string

const (
	// EntityContact is a person record.
	EntityContact EntityType = "contact"
	// EntityCompany is an organization record.
	EntityCompany EntityType = "company"
	// EntityDeal is an opportunity record.
	EntityDeal EntityType = "deal"
)

// ValidEntityType reports whether t is one of the known entity types.
func ValidEntityType(t EntityType) bool {
	switch t {
	case EntityContact, EntityCompany, EntityDeal:
		return true
	}
	return false
}

// EntityReference points at a CRM record attached to a user message.
// References are supplied by the caller's entity search; this package
// never constructs them.
type EntityReference struct {
	Type EntityType `json:"type"`
	ID   string     `json:"id"`
	Name string     `json:"name"`
}

// Skill is one entry in the skill table. Keywords are matched against
// user text by case-insensitive literal substring containment; they are
// stored lower-cased.
type Skill struct {
	Command     string   `json:"command" yaml:"command"`
	DisplayName string   `json:"display_name" yaml:"display_name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Keywords    []string `json:"keywords" yaml:"keywords"`
}

// Requirement describes which entities a skill needs before it can run.
// RequiredGroups is a conjunction of OR-groups: every group must be
// satisfied by at least one attached entity of a matching type, in any
// position. OptionalTypes are descriptive only and never enforced.
type Requirement struct {
	RequiredGroups [][]EntityType `json:"required_groups"`
	OptionalTypes  []EntityType   `json:"optional_types,omitempty"`
}

// Satisfied reports whether every required group has at least one
// matching entity among entities.
func (r *Requirement) Satisfied(entities []EntityReference) bool {
	return r.FirstUnsatisfiedGroup(entities) == nil
}

// FirstUnsatisfiedGroup returns the first OR-group that no attached
// entity satisfies, or nil when all groups are covered.
func (r *Requirement) FirstUnsatisfiedGroup(entities []EntityReference) []EntityType {
	for _, group := range r.RequiredGroups {
		if !groupSatisfied(group, entities) {
			return group
		}
	}
	return nil
}

func groupSatisfied(group []EntityType, entities []EntityReference) bool {
	for _, entity := range entities {
		for _, t := range group {
			if entity.Type == t {
				return true
			}
		}
	}
	return false
}

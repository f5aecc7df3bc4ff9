package command

import (
	"fmt"
	"strings"

	"github.com/coralcrm/copilot/pkg/skills"
)

// ErrorKind classifies a validation failure.
type ErrorKind string

const (
	// ErrUnknownSkill means the command does not exist in the skill table.
	ErrUnknownSkill ErrorKind = "unknown_skill"
	// ErrMissingEntity means a required entity group is not covered.
	ErrMissingEntity ErrorKind = "missing_entity"
	// ErrWrongEntityType is reserved for entity-shape mismatches; nothing
	// produces it yet.
	ErrWrongEntityType ErrorKind = "wrong_entity_type"
)

// ValidationError reports why a command cannot run. Message is
// user-facing copy the caller can surface directly.
type ValidationError struct {
	Kind    ErrorKind
	Command string
	Missing []skills.EntityType
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate checks whether the attached entities cover every required
// entity group of the command. It returns nil when the command is valid.
func Validate(reg *skills.Registry, cmd string, entities []skills.EntityReference) *ValidationError {
	cmd = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(cmd), "/"))

	req, ok := reg.Requirement(cmd)
	if !ok {
		return &ValidationError{
			Kind:    ErrUnknownSkill,
			Command: cmd,
			Message: fmt.Sprintf("Sorry, /%s isn't a command I recognize.", cmd),
		}
	}

	group := req.FirstUnsatisfiedGroup(entities)
	if group == nil {
		return nil
	}

	names := joinTypes(group)
	var message string
	if cmd == "proposal" {
		message = fmt.Sprintf("Attach a %s so I know who to write this for.", names)
	} else {
		message = fmt.Sprintf("Attach a %s so I know who to work with.", names)
	}

	return &ValidationError{
		Kind:    ErrMissingEntity,
		Command: cmd,
		Missing: group,
		Message: message,
	}
}

// joinTypes renders an OR-group as user-facing copy, e.g. "company or
// deal".
func joinTypes(group []skills.EntityType) string {
	names := make([]string, 0, len(group))
	for _, t := range group {
		names = append(names, string(t))
	}
	return strings.Join(names, " or ")
}

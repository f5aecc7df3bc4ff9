// Package command parses slash-command payloads from the chat input and
// validates them against per-skill entity requirements. Parsing and
// validation are pure functions; validation failures are returned as
// typed values, never panics.
package command

import (
	"regexp"
	"strings"

	"github.com/coralcrm/copilot/pkg/skills"
)

// SkillKeyPrefix namespaces skill commands for downstream executor
// lookup.
const SkillKeyPrefix = "crm.skill."

var whitespaceRun = regexp.MustCompile(`\s+`)

// Payload is the input shape produced by the chat composer: the resolved
// skill command (if any), the raw text, and the entity references the
// user attached.
type Payload struct {
	SkillCommand string                   `json:"skillCommand"`
	Text         string                   `json:"text"`
	Entities     []skills.EntityReference `json:"entities"`
}

// ParsedCommand is a normalized, transient view of one invocation. It is
// created per call and never persisted.
type ParsedCommand struct {
	SkillKey string
	Command  string
	Entities []skills.EntityReference
	FreeText string
}

// Parse normalizes a payload into a ParsedCommand. It returns nil when
// the payload declares no skill command.
//
// The command is lower-cased with any leading slash stripped. FreeText
// is the raw text minus the leading /command token, minus every literal
// @Name mention of an attached entity, with whitespace runs collapsed.
func Parse(payload Payload) *ParsedCommand {
	declared := strings.TrimSpace(payload.SkillCommand)
	if declared == "" {
		return nil
	}

	cmd := strings.ToLower(strings.TrimPrefix(declared, "/"))

	freeText := strings.TrimSpace(payload.Text)
	token := "/" + cmd
	if len(freeText) >= len(token) && strings.EqualFold(freeText[:len(token)], token) {
		freeText = freeText[len(token):]
	}

	for _, entity := range payload.Entities {
		if entity.Name == "" {
			continue
		}
		freeText = strings.ReplaceAll(freeText, "@"+entity.Name, "")
	}

	freeText = strings.TrimSpace(whitespaceRun.ReplaceAllString(freeText, " "))

	return &ParsedCommand{
		SkillKey: SkillKeyPrefix + cmd,
		Command:  cmd,
		Entities: payload.Entities,
		FreeText: freeText,
	}
}

// Package prompt assembles the text handed to the downstream executor
// from a parsed command, the caller-formatted entity context block, and
// the user's free text. Assembly is deterministic, fixed-order string
// concatenation.
package prompt

import (
	"fmt"
	"strings"

	"github.com/coralcrm/copilot/pkg/command"
)

const (
	commandOpenTag       = "<skill_command>"
	commandCloseTag      = "</skill_command>"
	instructionsOpenTag  = "<additional_instructions>"
	instructionsCloseTag = "</additional_instructions>"
)

// reservedTokens are stripped from user free text before embedding so a
// message cannot break out of its instructions tag.
var reservedTokens = []string{
	commandOpenTag,
	commandCloseTag,
	instructionsOpenTag,
	instructionsCloseTag,
}

// Build assembles the executor prompt. Parts appear in fixed order —
// command tag, entity context block, additional instructions tag,
// closing directive — joined by a blank line, with empty parts omitted.
//
// entityContext is an opaque block already formatted by the caller and
// is embedded as-is; only the free text is sanitized.
func Build(parsed *command.ParsedCommand, entityContext string) string {
	parts := []string{
		commandOpenTag + parsed.Command + commandCloseTag,
	}

	if ctx := strings.TrimSpace(entityContext); ctx != "" {
		parts = append(parts, ctx)
	}

	if freeText := sanitizeFreeText(parsed.FreeText); freeText != "" {
		parts = append(parts, instructionsOpenTag+freeText+instructionsCloseTag)
	}

	parts = append(parts, fmt.Sprintf("Now execute the %s skill with the context above.", parsed.Command))

	return strings.Join(parts, "\n\n")
}

// sanitizeFreeText removes the reserved tag tokens from user text.
func sanitizeFreeText(text string) string {
	for _, token := range reservedTokens {
		text = strings.ReplaceAll(text, token, "")
	}
	return strings.TrimSpace(text)
}

// Package intent maps free-text chat input to a skill suggestion by
// matching each skill's keywords against the text. Matching is literal
// case-insensitive substring containment; there is no tokenization or
// stemming.
package intent

import (
	"fmt"
	"strings"

	"github.com/coralcrm/copilot/pkg/skills"
)

const (
	baseConfidence    = 0.65
	multiKeywordBoost = 0.10
	entityBoost       = 0.10
	maxConfidence     = 0.95

	// minConfidence sits below baseConfidence, so any keyword hit
	// qualifies; the cutoff only bites if the weights are re-tuned.
	minConfidence = 0.60
)

// Suggestion is a transient match for the current input. Confidence is a
// heuristic score in [0.65, 0.95], not a probability.
type Suggestion struct {
	Command     string  `json:"command"`
	SkillName   string  `json:"skill_name"`
	Confidence  float64 `json:"confidence"`
	DisplayText string  `json:"display_text"`
}

// Detector scores free text against a skill registry. It holds no
// mutable state and is safe for concurrent use.
type Detector struct {
	registry *skills.Registry
}

// NewDetector creates a detector backed by reg.
func NewDetector(reg *skills.Registry) *Detector {
	return &Detector{registry: reg}
}

// Detect returns the best-matching skill for text, or nil when nothing
// clears the confidence cutoff. hasEntities indicates that the message
// already references concrete CRM records, which boosts confidence.
//
// Text that is empty or already a slash command yields no suggestion.
// Ties go to the earlier skill in table order.
func (d *Detector) Detect(text string, hasEntities bool) *Suggestion {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || strings.HasPrefix(trimmed, "/") {
		return nil
	}

	lowered := strings.ToLower(trimmed)

	var best *Suggestion
	for _, skill := range d.registry.All() {
		matched := 0
		for _, keyword := range skill.Keywords {
			if strings.Contains(lowered, keyword) {
				matched++
			}
		}
		if matched == 0 {
			continue
		}

		confidence := baseConfidence
		if matched > 1 {
			confidence += multiKeywordBoost
		}
		if hasEntities {
			confidence += entityBoost
		}
		if confidence > maxConfidence {
			confidence = maxConfidence
		}
		if confidence < minConfidence {
			continue
		}

		if best == nil || confidence > best.Confidence {
			best = &Suggestion{
				Command:     skill.Command,
				SkillName:   skill.DisplayName,
				Confidence:  confidence,
				DisplayText: fmt.Sprintf("Try /%s (%s)", skill.Command, skill.DisplayName),
			}
		}
	}

	return best
}

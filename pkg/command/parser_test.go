package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coralcrm/copilot/pkg/skills"
)

func TestParse(t *testing.T) {
	t.Run("no declared command", func(t *testing.T) {
		assert.Nil(t, Parse(Payload{Text: "just chatting"}))
	})

	t.Run("basic command", func(t *testing.T) {
		parsed := Parse(Payload{
			SkillCommand: "proposal",
			Text:         "/proposal something ambitious",
		})
		require.NotNil(t, parsed)
		assert.Equal(t, "proposal", parsed.Command)
		assert.Equal(t, "crm.skill.proposal", parsed.SkillKey)
		assert.Equal(t, "something ambitious", parsed.FreeText)
	})

	t.Run("normalization is idempotent across casing", func(t *testing.T) {
		upper := Parse(Payload{SkillCommand: "/Proposal", Text: "/Proposal hi"})
		lower := Parse(Payload{SkillCommand: "/proposal", Text: "/proposal hi"})
		require.NotNil(t, upper)
		require.NotNil(t, lower)
		assert.Equal(t, lower.Command, upper.Command)
		assert.Equal(t, lower.SkillKey, upper.SkillKey)
		assert.Equal(t, lower.FreeText, upper.FreeText)
	})

	t.Run("entity mentions are stripped", func(t *testing.T) {
		parsed := Parse(Payload{
			SkillCommand: "proposal",
			Text:         "/proposal for @Acme Corp focusing on @Acme Corp renewal",
			Entities: []skills.EntityReference{
				{Type: skills.EntityCompany, ID: "co_1", Name: "Acme Corp"},
			},
		})
		require.NotNil(t, parsed)
		assert.Equal(t, "for focusing on renewal", parsed.FreeText)
	})

	t.Run("whitespace runs collapse", func(t *testing.T) {
		parsed := Parse(Payload{
			SkillCommand: "summary",
			Text:         "/summary   last   quarter\n\nplease",
		})
		require.NotNil(t, parsed)
		assert.Equal(t, "last quarter please", parsed.FreeText)
	})

	t.Run("command token only strips at the start", func(t *testing.T) {
		parsed := Parse(Payload{
			SkillCommand: "chase",
			Text:         "/chase they ignored /chase twice",
		})
		require.NotNil(t, parsed)
		assert.Equal(t, "they ignored /chase twice", parsed.FreeText)
	})

	t.Run("declared command without slash in text", func(t *testing.T) {
		parsed := Parse(Payload{
			SkillCommand: "agenda",
			Text:         "thursday sync",
		})
		require.NotNil(t, parsed)
		assert.Equal(t, "agenda", parsed.Command)
		assert.Equal(t, "thursday sync", parsed.FreeText)
	})

	t.Run("entities pass through in order", func(t *testing.T) {
		entities := []skills.EntityReference{
			{Type: skills.EntityContact, ID: "c1", Name: "Jo"},
			{Type: skills.EntityDeal, ID: "d1", Name: "Renewal"},
		}
		parsed := Parse(Payload{SkillCommand: "handoff", Text: "/handoff", Entities: entities})
		require.NotNil(t, parsed)
		assert.Equal(t, entities, parsed.Entities)
		assert.Equal(t, "", parsed.FreeText)
	})
}

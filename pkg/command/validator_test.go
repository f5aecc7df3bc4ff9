package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coralcrm/copilot/pkg/skills"
)

func newRegistry(t *testing.T) *skills.Registry {
	t.Helper()
	reg, err := skills.NewRegistry()
	require.NoError(t, err)
	return reg
}

func TestValidate(t *testing.T) {
	reg := newRegistry(t)

	t.Run("unknown command", func(t *testing.T) {
		verr := Validate(reg, "madeup", []skills.EntityReference{
			{Type: skills.EntityDeal, ID: "d1", Name: "Renewal"},
		})
		require.NotNil(t, verr)
		assert.Equal(t, ErrUnknownSkill, verr.Kind)
		assert.Equal(t, "madeup", verr.Command)
		assert.Contains(t, verr.Message, "/madeup")
	})

	t.Run("proposal with no entities", func(t *testing.T) {
		verr := Validate(reg, "proposal", nil)
		require.NotNil(t, verr)
		assert.Equal(t, ErrMissingEntity, verr.Kind)
		assert.Equal(t, []skills.EntityType{skills.EntityCompany, skills.EntityDeal}, verr.Missing)
		assert.Equal(t, "Attach a company or deal so I know who to write this for.", verr.Message)
	})

	t.Run("proposal with a deal is valid", func(t *testing.T) {
		verr := Validate(reg, "proposal", []skills.EntityReference{
			{Type: skills.EntityDeal, ID: "d1", Name: "Acme renewal"},
		})
		assert.Nil(t, verr)
	})

	t.Run("proposal with a company is valid", func(t *testing.T) {
		verr := Validate(reg, "proposal", []skills.EntityReference{
			{Type: skills.EntityCompany, ID: "co1", Name: "Acme"},
		})
		assert.Nil(t, verr)
	})

	t.Run("proposal with only a contact is not", func(t *testing.T) {
		verr := Validate(reg, "proposal", []skills.EntityReference{
			{Type: skills.EntityContact, ID: "c1", Name: "Jo"},
		})
		require.NotNil(t, verr)
		assert.Equal(t, ErrMissingEntity, verr.Kind)
	})

	t.Run("non-proposal phrasing", func(t *testing.T) {
		verr := Validate(reg, "followup", nil)
		require.NotNil(t, verr)
		assert.Equal(t, "Attach a contact so I know who to work with.", verr.Message)
	})

	t.Run("handoff needs both groups", func(t *testing.T) {
		verr := Validate(reg, "handoff", []skills.EntityReference{
			{Type: skills.EntityDeal, ID: "d1", Name: "Renewal"},
		})
		require.NotNil(t, verr)
		assert.Equal(t, ErrMissingEntity, verr.Kind)
		// The contact group comes first in the table, so it is reported
		// first even though the deal group is covered.
		assert.Equal(t, []skills.EntityType{skills.EntityContact}, verr.Missing)
	})

	t.Run("handoff with both is valid", func(t *testing.T) {
		verr := Validate(reg, "handoff", []skills.EntityReference{
			{Type: skills.EntityDeal, ID: "d1", Name: "Renewal"},
			{Type: skills.EntityContact, ID: "c1", Name: "Jo"},
		})
		assert.Nil(t, verr)
	})

	t.Run("command is normalized before lookup", func(t *testing.T) {
		verr := Validate(reg, "/Proposal", []skills.EntityReference{
			{Type: skills.EntityDeal, ID: "d1", Name: "Renewal"},
		})
		assert.Nil(t, verr)
	})

	t.Run("validation error satisfies the error interface", func(t *testing.T) {
		var err error = Validate(reg, "madeup", nil)
		assert.EqualError(t, err, "Sorry, /madeup isn't a command I recognize.")
	})
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZoneProjectionFor(t *testing.T) {
	t.Run("team sets only the team pointer", func(t *testing.T) {
		projection := ZoneProjectionFor(AssigneeTeam, "team-1")
		assert.Equal(t, AssigneeTeam, projection.AssignmentType)
		require.NotNil(t, projection.TeamID)
		assert.Equal(t, "team-1", *projection.TeamID)
		assert.Nil(t, projection.ManagerID)
		assert.Nil(t, projection.CommercialID)
	})

	t.Run("commercial sets only the commercial pointer", func(t *testing.T) {
		projection := ZoneProjectionFor(AssigneeCommercial, "com-1")
		require.NotNil(t, projection.CommercialID)
		assert.Equal(t, "com-1", *projection.CommercialID)
		assert.Nil(t, projection.ManagerID)
		assert.Nil(t, projection.TeamID)
	})

	t.Run("manager sets only the manager pointer", func(t *testing.T) {
		projection := ZoneProjectionFor(AssigneeManager, "mgr-1")
		require.NotNil(t, projection.ManagerID)
		assert.Equal(t, "mgr-1", *projection.ManagerID)
		assert.Nil(t, projection.TeamID)
		assert.Nil(t, projection.CommercialID)
	})
}

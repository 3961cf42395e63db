package usecase

import (
	"testing"

	"github.com/prospectops/zone-assignment-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

// mgr-1 runs team-1 (com-1, com-2) and the team-less direct report
// com-3. com-4 belongs to mgr-2's team-2.
func newTestDirectory() *fakeDirectoryRepo {
	directory := newFakeDirectoryRepo()
	directory.addManager("mgr-1")
	directory.addManager("mgr-2")
	directory.addTeam("team-1", "mgr-1")
	directory.addTeam("team-2", "mgr-2")
	directory.addCommercial("com-1", strPtr("mgr-1"), strPtr("team-1"))
	directory.addCommercial("com-2", strPtr("mgr-1"), strPtr("team-1"))
	directory.addCommercial("com-3", strPtr("mgr-1"), nil)
	directory.addCommercial("com-4", strPtr("mgr-2"), strPtr("team-2"))
	return directory
}

func TestResolveCommercial(t *testing.T) {
	resolver := NewDefaultAssigneeResolver(newTestDirectory())

	ids, err := resolver.Resolve(domain.AssigneeCommercial, "com-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"com-1"}, ids)
}

func TestResolveTeam(t *testing.T) {
	resolver := NewDefaultAssigneeResolver(newTestDirectory())

	ids, err := resolver.Resolve(domain.AssigneeTeam, "team-1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"com-1", "com-2"}, ids)
}

func TestResolveManagerIncludesDirectReports(t *testing.T) {
	resolver := NewDefaultAssigneeResolver(newTestDirectory())

	ids, err := resolver.Resolve(domain.AssigneeManager, "mgr-1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"com-1", "com-2", "com-3"}, ids)
}

func TestResolveEmptySets(t *testing.T) {
	resolver := NewDefaultAssigneeResolver(newTestDirectory())

	t.Run("team with no members", func(t *testing.T) {
		directory := newTestDirectory()
		directory.addTeam("team-3", "mgr-2")
		ids, err := NewDefaultAssigneeResolver(directory).Resolve(domain.AssigneeTeam, "team-3")
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("unknown type resolves to nothing", func(t *testing.T) {
		ids, err := resolver.Resolve(domain.AssigneeType("DIRECTOR"), "whoever")
		require.NoError(t, err)
		assert.Empty(t, ids)
	})
}

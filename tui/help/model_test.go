package help

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestViewListsGroupsAndKeys(t *testing.T) {
	m := New()
	m.SetSize(100, 50)
	view := m.View()
	for _, name := range groupNames {
		require.Contains(t, view, name)
	}
	require.Contains(t, view, "edit labels")
}

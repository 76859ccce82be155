package labels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryResolve(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(DefaultCommitTypes())

	s, ok := reg.Resolve("FEAT")
	require.True(t, ok)
	require.Equal(t, "Feature", s.Label)

	_, ok = reg.Resolve("nope")
	require.False(t, ok)
}

func TestRegistryGroups(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(map[string]TypeStyle{
		"fix":    {Emoji: "🐛", Label: "Fix", Color: "purple"},
		"bugfix": {Emoji: "🐛", Label: "Fix", Color: "purple"},
		"docs":   {Emoji: "📚", Label: "Docs", Color: "blue"},
	})

	groups := reg.Groups()
	require.Len(t, groups, 2)
	require.Equal(t, []string{"bugfix", "fix"}, groups[0].Aliases)
	require.Equal(t, []string{"docs"}, groups[1].Aliases)
}

func TestRegistryDefaultGroupsShareStyles(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(DefaultCommitTypes())
	for _, g := range reg.Groups() {
		if g.Style.Label == "Documentation" || g.Style.Label == "Docs" {
			require.Equal(t, []string{"doc", "docs", "documentation"}, g.Aliases)
		}
	}
}

func TestRegistryAddGroup(t *testing.T) {
	t.Parallel()

	types := map[string]TypeStyle{"fix": {Emoji: "🐛", Label: "Fix", Color: "purple"}}
	reg := NewRegistry(types)

	g, err := reg.AddGroup([]string{" Sec ", "security", "sec"})
	require.NoError(t, err)
	require.Equal(t, []string{"sec", "security"}, g.Aliases)
	require.Equal(t, TypeStyle{Emoji: "🔄", Label: "Sec", Color: "blue"}, g.Style)
	require.Contains(t, types, "security")

	_, err = reg.AddGroup([]string{"new", "fix"})
	require.ErrorIs(t, err, ErrAliasExists)
	require.NotContains(t, types, "new")

	_, err = reg.AddGroup([]string{" ", ""})
	require.ErrorIs(t, err, ErrNoAliases)

	_, err = reg.AddGroup([]string{"has space"})
	var tokenErr *InvalidTokenError
	require.ErrorAs(t, err, &tokenErr)
}

func TestRegistrySetAliases(t *testing.T) {
	t.Parallel()

	fix := TypeStyle{Emoji: "🐛", Label: "Fix", Color: "purple"}
	types := map[string]TypeStyle{
		"fix":    fix,
		"bugfix": fix,
		"docs":   {Emoji: "📚", Label: "Docs", Color: "blue"},
	}
	reg := NewRegistry(types)

	got, err := reg.SetAliases([]string{"bugfix", "fix"}, ParseAliases("fix, fixed"))
	require.NoError(t, err)
	require.Equal(t, []string{"fix", "fixed"}, got)
	require.NotContains(t, types, "bugfix")
	require.Equal(t, fix, types["fixed"])

	_, err = reg.SetAliases([]string{"fix", "fixed"}, []string{"fix", "docs"})
	require.ErrorIs(t, err, ErrAliasExists)
	require.Contains(t, types, "fixed")

	_, err = reg.SetAliases([]string{"missing"}, []string{"x"})
	require.ErrorIs(t, err, ErrGroupNotFound)
}

func TestRegistryUpdateAndDeleteGroup(t *testing.T) {
	t.Parallel()

	fix := TypeStyle{Emoji: "🐛", Label: "Fix", Color: "purple"}
	types := map[string]TypeStyle{"fix": fix, "bugfix": fix}
	reg := NewRegistry(types)

	next := TypeStyle{Emoji: "🩹", Label: "Patch", Color: "red", Description: "Small fixes"}
	require.NoError(t, reg.UpdateGroup([]string{"bugfix", "fix"}, next))
	require.Equal(t, next, types["fix"])
	require.Equal(t, next, types["bugfix"])

	var colorErr *UnknownColorError
	require.ErrorAs(t, reg.UpdateGroup([]string{"fix"}, TypeStyle{Color: "magenta"}), &colorErr)

	require.NoError(t, reg.DeleteGroup([]string{"bugfix", "fix"}))
	require.Zero(t, reg.Len())

	require.ErrorIs(t, reg.DeleteGroup(nil), ErrNoAliases)
}

func TestConfigurationValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, DefaultConfiguration().Validate())

	cfg := DefaultConfiguration()
	cfg.CommitTypes = map[string]TypeStyle{}
	require.ErrorIs(t, cfg.Validate(), ErrNoCommitTypes)

	cfg.CommitTypes = map[string]TypeStyle{"Feat": {Color: "green"}}
	var tokenErr *InvalidTokenError
	require.ErrorAs(t, cfg.Validate(), &tokenErr)

	cfg.CommitTypes = map[string]TypeStyle{"feat": {Color: "teal"}}
	var colorErr *UnknownColorError
	require.ErrorAs(t, cfg.Validate(), &colorErr)
	require.Equal(t, "teal", colorErr.Color)
}

func TestCloneIsDeep(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfiguration()
	c := cfg.Clone()
	delete(c.CommitTypes, "feat")
	c.LabelStyle["fontSize"] = "20px"

	require.Contains(t, cfg.CommitTypes, "feat")
	require.Equal(t, "14px", cfg.LabelStyle["fontSize"])
}

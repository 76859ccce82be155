package commitlist

import (
	"context"
	"testing"

	"github.com/dylan/commitlabels/git"
	"github.com/dylan/commitlabels/labels"
	"github.com/stretchr/testify/require"
)

const graphOut = "* COMMIT:aaa1111| (HEAD -> main)|feat(api): add endpoint\n" +
	"|\\  \n" +
	"| * COMMIT:bbb2222||fix: crash on start\n" +
	"* COMMIT:ccc3333||plain message\n" +
	"* COMMIT:ddd4444||docs: readme"

func newList(t *testing.T, out string) Model {
	t.Helper()
	m := New(true)
	m.SetSize(80, 20)
	m.SetGraph(git.ParseGraph(out), "/work/repo", "main", false)
	return m
}

func scan(t *testing.T, m Model, r *labels.Renderer) labels.ScanStats {
	t.Helper()
	s := labels.NewScanner(r, func() labels.Theme { return labels.ThemeDark }, m.Strategy())
	stats, err := s.Run(context.Background(), nil)
	require.NoError(t, err)
	return stats
}

func TestRowsAreLabeledOnce(t *testing.T) {
	t.Parallel()

	m := newList(t, graphOut)
	require.Equal(t, 4, m.CommitCount())

	r := labels.NewRenderer(labels.DefaultConfiguration(), nil)
	stats := scan(t, m, r)
	require.Equal(t, StrategyName, stats.Strategy)
	require.Equal(t, 3, stats.Labeled)
	m.Rerender()

	row, ok := m.Selected()
	require.True(t, ok)
	require.Equal(t, "add endpoint", row.Title())
	require.Equal(t, "feat", row.Label().Type)
	require.Equal(t, "api", row.Label().Scope)
	require.Contains(t, m.View(), "Feature")
	require.Contains(t, m.View(), "add endpoint")
	require.NotContains(t, m.View(), "feat(api):")

	again := scan(t, m, r)
	require.Zero(t, again.Labeled)
	require.Equal(t, 3, r.Len())
}

func TestMergeKeepsSurvivingRows(t *testing.T) {
	t.Parallel()

	m := newList(t, graphOut)
	r := labels.NewRenderer(labels.DefaultConfiguration(), nil)
	scan(t, m, r)

	before := make(map[string]string)
	for _, e := range m.Entries() {
		before[e.(*Row).Hash()] = e.Key()
	}

	m.MoveDown()
	m.MergeGraph(git.ParseGraph("* COMMIT:eee5555| (HEAD -> main)|test: new case\n"+graphOut), "main", false)
	require.Equal(t, 5, m.CommitCount())
	require.Equal(t, "bbb2222", m.SelectedHash())

	for _, e := range m.Entries() {
		row := e.(*Row)
		if key, ok := before[row.Hash()]; ok {
			require.Equal(t, key, row.Key())
		}
	}

	stats := scan(t, m, r)
	require.Equal(t, 1, stats.Labeled)
	require.Equal(t, 4, r.Len())

	// A dropped commit loses its binding once the scan completes.
	m.MergeGraph(git.ParseGraph("* COMMIT:eee5555||test: new case\n* COMMIT:aaa1111||feat(api): add endpoint"), "main", true)
	scan(t, m, r)
	require.Equal(t, 2, r.Len())
	require.False(t, m.CanLoadMore())
}

func TestAppendSkipsKnownCommits(t *testing.T) {
	t.Parallel()

	m := newList(t, graphOut)
	added := m.AppendGraph(git.ParseGraph("* COMMIT:ddd4444||docs: readme\n* COMMIT:fff6666||chore: tidy"), false)
	require.Equal(t, 1, added)
	require.Equal(t, 5, m.CommitCount())
	require.True(t, m.CanLoadMore())

	m.GotoBottom()
	require.True(t, m.AtEnd())
	require.Equal(t, "fff6666", m.SelectedHash())
}

func TestSetGraphIssuesNewKeys(t *testing.T) {
	t.Parallel()

	m := newList(t, graphOut)
	first := m.Entries()[0].Key()
	m.SetGraph(git.ParseGraph(graphOut), "/work/repo", "main", false)
	require.NotEqual(t, first, m.Entries()[0].Key())
}

func TestHiddenLabelsAreNotDrawn(t *testing.T) {
	t.Parallel()

	m := newList(t, graphOut)
	r := labels.NewRenderer(labels.DefaultConfiguration(), nil)
	scan(t, m, r)

	r.SetVisible(false)
	m.Rerender()
	require.NotContains(t, m.View(), "Feature")
	require.Contains(t, m.View(), "add endpoint")

	r.SetVisible(true)
	m.Rerender()
	require.Contains(t, m.View(), "Feature")
}

func TestScopeSuffixShown(t *testing.T) {
	t.Parallel()

	cfg := labels.DefaultConfiguration()
	cfg.ShowScope = true
	cfg.RemovePrefix = false

	m := newList(t, graphOut)
	scan(t, m, labels.NewRenderer(cfg, nil))
	m.Rerender()
	require.Contains(t, m.View(), "(api)")
	require.Contains(t, m.View(), "feat(api): add endpoint")
}

func TestUpdateLabelWithoutInsertFails(t *testing.T) {
	t.Parallel()

	row := newRow(git.GraphLine{Hash: "abc", Message: "feat: x", IsCommit: true})
	require.ErrorIs(t, row.UpdateLabel(&labels.Label{}), errNoLabel)
	require.False(t, row.HasLabel())
}

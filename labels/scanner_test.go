package labels

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func darkTheme() Theme { return ThemeDark }

func TestRunYieldsBetweenBatches(t *testing.T) {
	t.Parallel()

	es := make([]*fakeEntry, 45)
	for i := range es {
		es[i] = newEntry(fmt.Sprintf("feat: change %d", i))
	}
	r := NewRenderer(DefaultConfiguration(), nil)
	s := NewScanner(r, darkTheme, staticStrategy("rows", es))

	var yieldedAfter []int
	stats, err := s.Run(context.Background(), func(st ScanStats) {
		yieldedAfter = append(yieldedAfter, st.Labeled+st.Skipped+st.Failed)
	})
	require.NoError(t, err)

	require.Equal(t, []int{20, 40}, yieldedAfter)
	require.Equal(t, ScanStats{Strategy: "rows", Discovered: 45, Labeled: 45, Batches: 3}, stats)
	for _, e := range es {
		require.Equal(t, 1, e.inserts)
	}

	again, err := s.Run(context.Background(), nil)
	require.NoError(t, err)
	require.Zero(t, again.Labeled)
	require.Equal(t, 45, again.Skipped)
	for _, e := range es {
		require.Equal(t, 1, e.inserts)
	}
}

func TestBeginUsesFirstNonEmptyStrategy(t *testing.T) {
	t.Parallel()

	r := NewRenderer(DefaultConfiguration(), nil)
	fallback := entries("fix: a")
	s := NewScanner(r, darkTheme,
		Strategy{Name: "broken", Find: func() ([]Entry, error) { return nil, errors.New("bad selector") }},
		staticStrategy("empty", nil),
		staticStrategy("fallback", fallback),
		staticStrategy("never", entries("feat: b")),
	)

	sc := s.Begin()
	require.Equal(t, "fallback", sc.Stats().Strategy)
	require.Equal(t, 1, sc.Stats().Discovered)
	require.False(t, sc.Step())
	require.Equal(t, 1, fallback[0].inserts)
}

func TestSelectorExhaustionIsNoop(t *testing.T) {
	t.Parallel()

	r := NewRenderer(DefaultConfiguration(), nil)
	s := NewScanner(r, darkTheme, staticStrategy("empty", nil))

	sc := s.Begin()
	require.True(t, sc.Done())
	require.False(t, sc.Step())
	require.Zero(t, sc.Stats().Batches)
}

func TestEntryFaultsDoNotAbortBatch(t *testing.T) {
	t.Parallel()

	es := entries("feat: ok", "fix: panics", "docs: insert fails", "random text", "unknowntype: x", "test: ok")
	es[1].panics = true
	es[2].insertErr = errors.New("detached")

	r := NewRenderer(DefaultConfiguration(), nil)
	s := NewScanner(r, darkTheme, staticStrategy("rows", es))

	stats, err := s.Run(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, 2, stats.Labeled)
	require.Equal(t, 2, stats.Failed)
	require.Equal(t, 2, stats.Skipped)

	require.NotNil(t, es[0].label)
	require.NotNil(t, es[5].label)
	require.Nil(t, es[3].label)
	require.Equal(t, "random text", es[3].title)
	require.Equal(t, "unknowntype: x", es[4].title)
}

func TestScanPrunesReplacedEntries(t *testing.T) {
	t.Parallel()

	first := entries("feat: a", "fix: b")
	current := first
	r := NewRenderer(DefaultConfiguration(), nil)
	s := NewScanner(r, darkTheme, Strategy{Name: "rows", Find: func() ([]Entry, error) {
		return asEntries(current), nil
	}})

	_, err := s.Run(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, 2, r.Len())

	current = entries("feat: a", "fix: b")
	stats, err := s.Run(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, 2, stats.Labeled)
	require.Equal(t, 2, r.Len())
	_, ok := r.Label(first[0].key)
	require.False(t, ok)
}

func TestRunStopsOnCancel(t *testing.T) {
	t.Parallel()

	es := make([]*fakeEntry, 50)
	for i := range es {
		es[i] = newEntry("feat: x")
	}
	r := NewRenderer(DefaultConfiguration(), nil)
	s := NewScanner(r, darkTheme, staticStrategy("rows", es))

	ctx, cancel := context.WithCancel(context.Background())
	stats, err := s.Run(ctx, func(ScanStats) { cancel() })
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 20, stats.Labeled)
}

func TestThemeChangeMidScanColorsEveryLabel(t *testing.T) {
	t.Parallel()

	es := make([]*fakeEntry, 45)
	for i := range es {
		es[i] = newEntry(fmt.Sprintf("feat: change %d", i))
	}
	r := NewRenderer(DefaultConfiguration(), nil)
	resolver := NewThemeResolver(Attributes{ColorMode: ModeDark}, false)
	resolver.OnChange(func(theme Theme) { r.Recolor(theme) })
	s := NewScanner(r, resolver.Current, staticStrategy("rows", es))

	sc := s.Begin()
	require.True(t, sc.Step())
	require.True(t, resolver.SetAttributes(Attributes{ColorMode: ModeLight}))
	for sc.Step() {
	}

	light, ok := DefaultPalette().Resolve("green", ThemeLight)
	require.True(t, ok)
	for i, e := range es {
		require.NotNil(t, e.label, "entry %d", i)
		require.Equal(t, light, e.label.Colors, "entry %d", i)
	}
}

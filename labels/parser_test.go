package labels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(DefaultCommitTypes())

	tests := []struct {
		name  string
		title string
		want  Parsed
		ok    bool
	}{
		{"type and scope", "feat(api): add endpoint", Parsed{"feat", "api", "add endpoint"}, true},
		{"no scope", "fix: handle nil", Parsed{"fix", "", "handle nil"}, true},
		{"uppercase type", "FEAT(UI): Big Button", Parsed{"feat", "UI", "Big Button"}, true},
		{"hyphenated scope", "docs(read-me): typo", Parsed{"docs", "read-me", "typo"}, true},
		{"no space after colon", "chore:bump", Parsed{"chore", "", "bump"}, true},
		{"empty message", "wip:", Parsed{"wip", "", ""}, true},
		{"surrounding whitespace", "  test: cover parser  ", Parsed{"test", "", "cover parser"}, true},
		{"first line only", "refactor: split\n\nbody: text", Parsed{"refactor", "", "split"}, true},
		{"message keeps colons", "fix: a: b", Parsed{"fix", "", "a: b"}, true},
		{"plain text", "random text without prefix", Parsed{}, false},
		{"unregistered type", "unknowntype: something", Parsed{}, false},
		{"colon not anchored", "update the thing: now", Parsed{}, false},
		{"empty scope", "feat(): msg", Parsed{}, false},
		{"space before colon", "feat : msg", Parsed{}, false},
		{"empty", "", Parsed{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.title, reg)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestMatchIgnoresRegistry(t *testing.T) {
	t.Parallel()

	p, ok := Match("unknowntype(x): something")
	require.True(t, ok)
	require.Equal(t, Parsed{Type: "unknowntype", Scope: "x", Message: "something"}, p)

	_, ok = Parse("unknowntype(x): something", NewRegistry(nil))
	require.False(t, ok)
}

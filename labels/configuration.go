// Package labels is the commit labeling engine: it parses conventional
// commit titles, resolves their styles and theme colors, and decorates host
// entries exactly once even when the host re-renders underneath it.
package labels

import (
	"maps"
	"strings"
)

// TypeStyle is the visual style of one commit type token. Aliases share an
// equal TypeStyle.
type TypeStyle struct {
	Emoji       string `json:"emoji"`
	Label       string `json:"label"`
	Color       string `json:"color"`
	Description string `json:"description,omitempty"`
}

// Configuration is the persisted, user-editable label configuration.
type Configuration struct {
	RemovePrefix       bool                 `json:"removePrefix"`
	EnableTooltips     bool                 `json:"enableTooltips"`
	LabelsVisible      bool                 `json:"labelsVisible"`
	ShowScope          bool                 `json:"showScope"`
	ShowFloatingButton bool                 `json:"showFloatingButton"`
	LabelStyle         map[string]string    `json:"labelStyle"`
	CommitTypes        map[string]TypeStyle `json:"commitTypes"`
}

// DefaultLabelStyle returns the default label style properties. Hosts map
// the subset they understand (the HTML host uses all of them as CSS).
func DefaultLabelStyle() map[string]string {
	return map[string]string{
		"fontSize":       "14px",
		"fontWeight":     "500",
		"height":         "24px",
		"padding":        "0 10px",
		"marginRight":    "8px",
		"borderRadius":   "20px",
		"minWidth":       "auto",
		"textAlign":      "center",
		"display":        "inline-flex",
		"alignItems":     "center",
		"justifyContent": "center",
		"whiteSpace":     "nowrap",
		"backdropFilter": "blur(4px)",
		"border":         "1px solid rgba(240, 246, 252, 0.1)",
	}
}

// DefaultCommitTypes returns the built-in type table.
func DefaultCommitTypes() map[string]TypeStyle {
	feature := TypeStyle{Emoji: "✨", Label: "Feature", Color: "green", Description: "New user features (not for new files without user features)"}
	added := TypeStyle{Emoji: "📝", Label: "Added", Color: "green", Description: "New files/resources with no user-facing features"}
	updated := TypeStyle{Emoji: "♻️", Label: "Updated", Color: "blue", Description: "Changes to existing functionality"}
	removed := TypeStyle{Emoji: "🗑️", Label: "Removed", Color: "red", Description: "Removing files/code"}
	fix := TypeStyle{Emoji: "🐛", Label: "Fix", Color: "purple", Description: "Bug fixes"}
	docs := TypeStyle{Emoji: "📚", Label: "Docs", Color: "blue", Description: "Documentation only changes"}
	style := TypeStyle{Emoji: "💎", Label: "Style", Color: "light-green", Description: "Formatting, whitespace, no code behavior change"}
	perf := TypeStyle{Emoji: "🚀", Label: "Performance", Color: "purple", Description: "Performance improvements"}
	test := TypeStyle{Emoji: "🧪", Label: "Test", Color: "yellow", Description: "Adding or correcting tests"}
	deploy := TypeStyle{Emoji: "📦", Label: "Deploy", Color: "orange", Description: "Deployment and release changes"}
	deps := TypeStyle{Emoji: "📦", Label: "Dependencies", Color: "light-green", Description: "Dependency updates"}

	return map[string]TypeStyle{
		"feat":    feature,
		"feature": feature,

		"added": added,
		"add":   added,

		"update":  updated,
		"updated": updated,

		"removed": removed,
		"remove":  removed,

		"fix":    fix,
		"bugfix": fix,
		"fixed":  fix,
		"hotfix": {Emoji: "🚨", Label: "Hot Fix", Color: "red", Description: "Critical bug fixes requiring immediate attention"},

		"docs":          docs,
		"doc":           docs,
		"documentation": docs,

		"style": style,
		"css":   style,
		"ui":    {Emoji: "🎨", Label: "UI", Color: "light-green", Description: "User interface changes"},

		"refactor":    {Emoji: "📦", Label: "Refactor", Color: "light-blue", Description: "Code changes that neither fix bugs nor add features"},
		"perf":        perf,
		"performance": perf,
		"optimize":    {Emoji: "⚡", Label: "Optimize", Color: "purple", Description: "Code optimization without functional changes"},

		"test":    test,
		"tests":   test,
		"testing": test,

		"build":   {Emoji: "🛠", Label: "Build", Color: "orange", Description: "Build system or external dependency changes"},
		"ci":      {Emoji: "⚙️", Label: "CI", Color: "gray", Description: "CI configuration changes"},
		"cd":      {Emoji: "🚀", Label: "CD", Color: "gray", Description: "Continuous deployment changes"},
		"deploy":  deploy,
		"release": deploy,

		"chore":        {Emoji: "♻️", Label: "Chore", Color: "light-green", Description: "Routine maintenance tasks"},
		"deps":         deps,
		"dep":          deps,
		"dependencies": deps,
		"revert":       {Emoji: "🗑", Label: "Revert", Color: "red", Description: "Reverting previous changes"},
		"wip":          {Emoji: "🚧", Label: "WIP", Color: "dark-yellow", Description: "Work in progress"},
	}
}

// DefaultConfiguration returns a fresh default configuration.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		RemovePrefix:       true,
		EnableTooltips:     true,
		LabelsVisible:      true,
		ShowScope:          false,
		ShowFloatingButton: true,
		LabelStyle:         DefaultLabelStyle(),
		CommitTypes:        DefaultCommitTypes(),
	}
}

// Clone returns a deep copy. Editors work on a clone and replace the live
// configuration only on save.
func (c *Configuration) Clone() *Configuration {
	out := *c
	out.LabelStyle = maps.Clone(c.LabelStyle)
	out.CommitTypes = maps.Clone(c.CommitTypes)
	return &out
}

// Validate checks the invariants every persisted configuration must hold.
func (c *Configuration) Validate() error {
	if len(c.CommitTypes) == 0 {
		return ErrNoCommitTypes
	}
	for token, style := range c.CommitTypes {
		if err := ValidateToken(token); err != nil {
			return err
		}
		if !KnownColor(style.Color) {
			return &UnknownColorError{Token: token, Color: style.Color}
		}
	}
	return nil
}

// ValidateToken reports whether token is a usable type token: non-empty,
// lowercase, no whitespace, and matchable by the title pattern.
func ValidateToken(token string) error {
	if token == "" {
		return &InvalidTokenError{Token: token, Reason: "empty"}
	}
	if token != strings.ToLower(token) {
		return &InvalidTokenError{Token: token, Reason: "must be lowercase"}
	}
	for _, r := range token {
		if !isWordRune(r) {
			return &InvalidTokenError{Token: token, Reason: "only letters, digits and underscores are allowed"}
		}
	}
	return nil
}

func isWordRune(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

package labels

import (
	"fmt"
	"slices"
	"strings"
)

// Registry resolves commit type tokens against a configuration's type table.
type Registry struct {
	types map[string]TypeStyle
}

// NewRegistry wraps types. The map is owned by the caller's configuration,
// so editor changes are visible immediately.
func NewRegistry(types map[string]TypeStyle) *Registry {
	if types == nil {
		types = make(map[string]TypeStyle)
	}
	return &Registry{types: types}
}

// Resolve looks up token case-insensitively.
func (r *Registry) Resolve(token string) (TypeStyle, bool) {
	s, ok := r.types[strings.ToLower(token)]
	return s, ok
}

// Len returns the number of registered tokens.
func (r *Registry) Len() int {
	return len(r.types)
}

// Group is a set of aliases sharing one style.
type Group struct {
	Aliases []string
	Style   TypeStyle
}

// Groups returns aliases grouped by equal style. Aliases are sorted within a
// group; groups are ordered by their first alias.
func (r *Registry) Groups() []Group {
	byStyle := make(map[TypeStyle][]string)
	for token, style := range r.types {
		byStyle[style] = append(byStyle[style], token)
	}

	groups := make([]Group, 0, len(byStyle))
	for style, aliases := range byStyle {
		slices.Sort(aliases)
		groups = append(groups, Group{Aliases: aliases, Style: style})
	}
	slices.SortFunc(groups, func(a, b Group) int {
		return strings.Compare(a.Aliases[0], b.Aliases[0])
	})
	return groups
}

// DefaultGroupStyle is the style a freshly added group starts with.
func DefaultGroupStyle(firstAlias string) TypeStyle {
	label := firstAlias
	if label != "" {
		label = strings.ToUpper(label[:1]) + label[1:]
	}
	return TypeStyle{Emoji: "🔄", Label: label, Color: "blue"}
}

// AddGroup registers a new group with the default style.
func (r *Registry) AddGroup(aliases []string) (Group, error) {
	aliases, err := normalizeAliases(aliases)
	if err != nil {
		return Group{}, err
	}
	for _, a := range aliases {
		if _, ok := r.types[a]; ok {
			return Group{}, fmt.Errorf("%w: %q", ErrAliasExists, a)
		}
	}

	style := DefaultGroupStyle(aliases[0])
	for _, a := range aliases {
		r.types[a] = style
	}
	return Group{Aliases: aliases, Style: style}, nil
}

// SetAliases replaces the alias set of the group owning old. The group keeps
// its style.
func (r *Registry) SetAliases(old, aliases []string) ([]string, error) {
	style, err := r.groupStyle(old)
	if err != nil {
		return nil, err
	}
	aliases, err = normalizeAliases(aliases)
	if err != nil {
		return nil, err
	}
	for _, a := range aliases {
		if _, ok := r.types[a]; ok && !slices.Contains(old, a) {
			return nil, fmt.Errorf("%w: %q", ErrAliasExists, a)
		}
	}

	for _, a := range old {
		delete(r.types, a)
	}
	for _, a := range aliases {
		r.types[a] = style
	}
	return aliases, nil
}

// UpdateGroup assigns style to every alias in the group.
func (r *Registry) UpdateGroup(aliases []string, style TypeStyle) error {
	if _, err := r.groupStyle(aliases); err != nil {
		return err
	}
	if !KnownColor(style.Color) {
		return &UnknownColorError{Token: aliases[0], Color: style.Color}
	}
	for _, a := range aliases {
		r.types[a] = style
	}
	return nil
}

// DeleteGroup removes every alias in the group.
func (r *Registry) DeleteGroup(aliases []string) error {
	if _, err := r.groupStyle(aliases); err != nil {
		return err
	}
	for _, a := range aliases {
		delete(r.types, a)
	}
	return nil
}

func (r *Registry) groupStyle(aliases []string) (TypeStyle, error) {
	if len(aliases) == 0 {
		return TypeStyle{}, ErrNoAliases
	}
	style, ok := r.types[aliases[0]]
	if !ok {
		return TypeStyle{}, fmt.Errorf("%w: %q", ErrGroupNotFound, aliases[0])
	}
	for _, a := range aliases[1:] {
		if s, ok := r.types[a]; !ok || s != style {
			return TypeStyle{}, fmt.Errorf("%w: %q", ErrGroupNotFound, a)
		}
	}
	return style, nil
}

// normalizeAliases lowercases, trims, dedupes and validates user input.
func normalizeAliases(in []string) ([]string, error) {
	var out []string
	for _, a := range in {
		a = strings.ToLower(strings.TrimSpace(a))
		if a == "" || slices.Contains(out, a) {
			continue
		}
		if err := ValidateToken(a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if len(out) == 0 {
		return nil, ErrNoAliases
	}
	return out, nil
}

// ParseAliases splits comma separated editor input.
func ParseAliases(s string) []string {
	return strings.Split(s, ",")
}

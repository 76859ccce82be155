package labels

import (
	"slices"
	"strings"
	"sync"
)

// Theme is a normalized theme name used to index the palette.
type Theme string

const (
	ThemeLight      Theme = "light"
	ThemeDark       Theme = "dark"
	ThemeDarkDimmed Theme = "dark_dimmed"
)

// Color modes carried by the host root.
const (
	ModeLight = "light"
	ModeDark  = "dark"
	ModeAuto  = "auto"
)

// NormalizeTheme reduces a host theme name to one of the base themes.
// Unknown names fall back to dark.
func NormalizeTheme(name string) Theme {
	name = strings.ToLower(strings.TrimSpace(name))
	switch {
	case name == string(ThemeDarkDimmed):
		return ThemeDarkDimmed
	case strings.HasPrefix(name, string(ThemeLight)):
		return ThemeLight
	default:
		return ThemeDark
	}
}

// Attributes are the theme signals published on the host root.
type Attributes struct {
	ColorMode  string
	LightTheme string
	DarkTheme  string
}

// Resolve computes the theme for these attributes. systemDark is only
// consulted in auto mode.
func (a Attributes) Resolve(systemDark bool) Theme {
	light, dark := ThemeLight, ThemeDark
	if a.LightTheme != "" {
		light = NormalizeTheme(a.LightTheme)
	}
	if a.DarkTheme != "" {
		dark = NormalizeTheme(a.DarkTheme)
	}

	switch strings.ToLower(a.ColorMode) {
	case ModeLight:
		return light
	case ModeAuto:
		if systemDark {
			return dark
		}
		return light
	default:
		return dark
	}
}

// ThemeResolver holds the current theme and notifies subscribers when it
// changes. Signals may arrive from any goroutine.
type ThemeResolver struct {
	mu         sync.Mutex
	attrs      Attributes
	systemDark bool
	current    Theme
	subs       []func(Theme)
}

// NewThemeResolver returns a resolver seeded with attrs and the current OS
// preference.
func NewThemeResolver(attrs Attributes, systemDark bool) *ThemeResolver {
	return &ThemeResolver{
		attrs:      attrs,
		systemDark: systemDark,
		current:    attrs.Resolve(systemDark),
	}
}

// Current returns the active theme.
func (r *ThemeResolver) Current() Theme {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Attributes returns the last attributes seen.
func (r *ThemeResolver) Attributes() Attributes {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.attrs
}

// OnChange registers fn to run after every theme change. fn runs on the
// goroutine that delivered the signal.
func (r *ThemeResolver) OnChange(fn func(Theme)) {
	r.mu.Lock()
	r.subs = append(r.subs, fn)
	r.mu.Unlock()
}

// SetAttributes handles a root attribute mutation.
func (r *ThemeResolver) SetAttributes(attrs Attributes) bool {
	r.mu.Lock()
	r.attrs = attrs
	return r.resolveLocked()
}

// SetSystemDark handles an OS preference change. It only re-resolves when
// the color mode is auto.
func (r *ThemeResolver) SetSystemDark(dark bool) bool {
	r.mu.Lock()
	r.systemDark = dark
	if !strings.EqualFold(r.attrs.ColorMode, ModeAuto) {
		r.mu.Unlock()
		return false
	}
	return r.resolveLocked()
}

// resolveLocked must be called with mu held; it releases it before
// notifying subscribers.
func (r *ThemeResolver) resolveLocked() bool {
	next := r.attrs.Resolve(r.systemDark)
	if next == r.current {
		r.mu.Unlock()
		return false
	}
	r.current = next
	subs := slices.Clone(r.subs)
	r.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
	return true
}

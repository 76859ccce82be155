package labels

import (
	"fmt"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
)

// Colors is a resolved label color pair for one theme.
type Colors struct {
	Background string
	Foreground string
	Border     string
}

// tintAlpha is how strongly a key's tint shows through the theme canvas.
const tintAlpha = 0.2

// borderAlpha mixes the foreground into the canvas for label borders.
const borderAlpha = 0.3

var canvases = map[Theme]string{
	ThemeLight:      "#ffffff",
	ThemeDark:       "#0d1117",
	ThemeDarkDimmed: "#22272e",
}

type swatch struct {
	tint string
	fg   map[Theme]string
}

// swatches lists every color key in display order.
var swatches = []struct {
	key string
	swatch
}{
	{"green", swatch{"#238636", map[Theme]string{ThemeLight: "#1a7f37", ThemeDark: "#7ee787", ThemeDarkDimmed: "#57ab5a"}}},
	{"purple", swatch{"#a371f7", map[Theme]string{ThemeLight: "#8250df", ThemeDark: "#d2a8ff", ThemeDarkDimmed: "#dcbdfb"}}},
	{"blue", swatch{"#2f81f7", map[Theme]string{ThemeLight: "#0969da", ThemeDark: "#79c0ff", ThemeDarkDimmed: "#96d0ff"}}},
	{"light-blue", swatch{"#1f6feb", map[Theme]string{ThemeLight: "#0550ae", ThemeDark: "#58a6ff", ThemeDarkDimmed: "#6cb6ff"}}},
	{"yellow", swatch{"#d29922", map[Theme]string{ThemeLight: "#9a6700", ThemeDark: "#e3b341", ThemeDarkDimmed: "#daaa3f"}}},
	{"orange", swatch{"#db6d28", map[Theme]string{ThemeLight: "#bc4c00", ThemeDark: "#ffa657", ThemeDarkDimmed: "#f69d50"}}},
	{"gray", swatch{"#8b949e", map[Theme]string{ThemeLight: "#57606a", ThemeDark: "#8b949e", ThemeDarkDimmed: "#909dab"}}},
	{"light-green", swatch{"#39d353", map[Theme]string{ThemeLight: "#2da44e", ThemeDark: "#56d364", ThemeDarkDimmed: "#8ddb8c"}}},
	{"red", swatch{"#f85149", map[Theme]string{ThemeLight: "#cf222e", ThemeDark: "#ff7b72", ThemeDarkDimmed: "#f47067"}}},
	{"dark-yellow", swatch{"#bb8009", map[Theme]string{ThemeLight: "#7d4e00", ThemeDark: "#bb8009", ThemeDarkDimmed: "#c69026"}}},
}

// Palette maps color key × theme to concrete colors.
type Palette struct {
	keys    []string
	entries map[Theme]map[string]Colors
}

var defaultPalette = buildPalette()

// DefaultPalette returns the shared built-in palette. It is read-only.
func DefaultPalette() *Palette {
	return defaultPalette
}

// mustHex parses one of the constant swatch colors.
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("palette color %q: %v", s, err))
	}
	return c
}

func buildPalette() *Palette {
	p := &Palette{entries: make(map[Theme]map[string]Colors, len(canvases))}
	for _, s := range swatches {
		p.keys = append(p.keys, s.key)
	}
	for theme, canvasHex := range canvases {
		canvas := mustHex(canvasHex)
		byKey := make(map[string]Colors, len(swatches))
		for _, s := range swatches {
			tint := mustHex(s.tint)
			fg := mustHex(s.fg[theme])
			byKey[s.key] = Colors{
				Background: canvas.BlendRgb(tint, tintAlpha).Clamped().Hex(),
				Foreground: fg.Hex(),
				Border:     canvas.BlendRgb(fg, borderAlpha).Clamped().Hex(),
			}
		}
		p.entries[theme] = byKey
	}
	return p
}

// Resolve returns the colors for key under theme. Variant theme names are
// normalized first, so "light_high_contrast" resolves like "light".
func (p *Palette) Resolve(key string, theme Theme) (Colors, bool) {
	byKey, ok := p.entries[NormalizeTheme(string(theme))]
	if !ok {
		return Colors{}, false
	}
	c, ok := byKey[key]
	return c, ok
}

// Keys returns the color keys in display order.
func (p *Palette) Keys() []string {
	return slices.Clone(p.keys)
}

// Has reports whether key is defined.
func (p *Palette) Has(key string) bool {
	return slices.Contains(p.keys, key)
}

// KnownColor reports whether the default palette defines key.
func KnownColor(key string) bool {
	return defaultPalette.Has(key)
}

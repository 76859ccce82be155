package labels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeTheme(t *testing.T) {
	t.Parallel()

	cases := map[string]Theme{
		"light":               ThemeLight,
		"light_high_contrast": ThemeLight,
		"light_colorblind":    ThemeLight,
		"dark":                ThemeDark,
		"dark_dimmed":         ThemeDarkDimmed,
		"dark_high_contrast":  ThemeDark,
		"dark_tritanopia":     ThemeDark,
		" Dark_Dimmed ":       ThemeDarkDimmed,
		"":                    ThemeDark,
		"solarized":           ThemeDark,
	}
	for in, want := range cases {
		require.Equal(t, want, NormalizeTheme(in), in)
	}
}

func TestAttributesResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		attrs      Attributes
		systemDark bool
		want       Theme
	}{
		{"light mode", Attributes{ColorMode: "light"}, true, ThemeLight},
		{"dark mode", Attributes{ColorMode: "dark"}, false, ThemeDark},
		{"dark mode variant", Attributes{ColorMode: "dark", DarkTheme: "dark_dimmed"}, false, ThemeDarkDimmed},
		{"light mode variant", Attributes{ColorMode: "light", LightTheme: "light_high_contrast"}, false, ThemeLight},
		{"auto follows system dark", Attributes{ColorMode: "auto", DarkTheme: "dark_dimmed"}, true, ThemeDarkDimmed},
		{"auto follows system light", Attributes{ColorMode: "auto", DarkTheme: "dark_dimmed"}, false, ThemeLight},
		{"auto night theme may be light", Attributes{ColorMode: "auto", DarkTheme: "light"}, true, ThemeLight},
		{"missing mode", Attributes{}, false, ThemeDark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.attrs.Resolve(tt.systemDark))
		})
	}
}

func TestThemeResolverSystemSignalOnlyInAuto(t *testing.T) {
	t.Parallel()

	r := NewThemeResolver(Attributes{ColorMode: "light"}, false)
	var seen []Theme
	r.OnChange(func(th Theme) { seen = append(seen, th) })

	require.False(t, r.SetSystemDark(true))
	require.Equal(t, ThemeLight, r.Current())
	require.Empty(t, seen)

	require.True(t, r.SetAttributes(Attributes{ColorMode: "auto"}))
	require.Equal(t, ThemeDark, r.Current())

	require.True(t, r.SetSystemDark(false))
	require.Equal(t, ThemeLight, r.Current())

	require.False(t, r.SetAttributes(Attributes{ColorMode: "auto", LightTheme: "light_colorblind"}))
	require.Equal(t, []Theme{ThemeDark, ThemeLight}, seen)
}

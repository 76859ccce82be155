package icons

var (
	useIcons     = true
	useNerdFonts bool
)

// SetIcons enables or disables label icons.
func SetIcons(enabled bool) { useIcons = enabled }

// SetNerdFonts enables or disables Nerd Font icons.
func SetNerdFonts(enabled bool) { useNerdFonts = enabled }

// Kind names a piece of UI chrome that carries an icon.
type Kind int

const (
	Repo Kind = iota
	Branch
	Commit
	Tag
	Label
	Light
	Dark
	Auto
)

// --- Unicode fallback icons ---

var glyphs = map[Kind]string{
	Repo:   "▪",
	Branch: "⎇",
	Commit: "●",
	Tag:    "⌂",
	Label:  "◆",
	Light:  "☀",
	Dark:   "☾",
	Auto:   "◐",
}

// --- Nerd Font v3 icons ---

var nerdGlyphs = map[Kind]string{
	Repo:   "\uf401", //  repo
	Branch: "\ue725", //  branch
	Commit: "\uf417", //  commit
	Tag:    "\uf412", //  tag
	Label:  "\uf02b", //  label
	Light:  "\uf185", //  sun
	Dark:   "\uf186", //  moon
	Auto:   "\uf042", //  adjust
}

var nerdTypeIcons = map[string]string{
	"feat":     "\uf005", //  star
	"feature":  "\uf005",
	"fix":      "\uf188", //  bug
	"bugfix":   "\uf188",
	"fixed":    "\uf188",
	"hotfix":   "\uf0e7", //  bolt
	"docs":     "\uf02d", //  book
	"doc":      "\uf02d",
	"test":     "\uf0c3", //  flask
	"tests":    "\uf0c3",
	"testing":  "\uf0c3",
	"refactor": "\uf0ad", //  wrench
	"perf":     "\uf135", //  rocket
	"build":    "\uf1b3", //  cubes
	"ci":       "\uf013", //  cog
	"deploy":   "\uf187", //  archive
	"release":  "\uf187",
	"chore":    "\uf1b8", //  recycle
	"revert":   "\uf0e2", //  undo
	"wip":      "\uf071", //  warning
	"style":    "\uf1fc", //  brush
	"ui":       "\uf1fc",
	"deps":     "\uf1b3",
}

// Glyph returns the icon for a piece of chrome.
func Glyph(k Kind) string {
	if useNerdFonts {
		return nerdGlyphs[k]
	}
	return glyphs[k]
}

// ForMode returns the icon for a color mode.
func ForMode(mode string) string {
	switch mode {
	case "light":
		return Glyph(Light)
	case "dark":
		return Glyph(Dark)
	default:
		return Glyph(Auto)
	}
}

// ForType returns the badge icon for a commit type. Nerd Fonts replace the
// configured emoji for well-known types; with icons off there is none.
func ForType(token, emoji string) string {
	if useNerdFonts {
		if icon, ok := nerdTypeIcons[token]; ok {
			return icon
		}
	}
	if !useIcons {
		return ""
	}
	return emoji
}

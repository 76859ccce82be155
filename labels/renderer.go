package labels

import (
	"github.com/dylan/commitlabels/logging"
	"github.com/rs/zerolog"
)

// Label is the decoration attached to one commit entry. Type and Scope are
// kept so recoloring never needs to re-parse the title.
type Label struct {
	Type        string
	Scope       string
	Emoji       string
	Text        string
	Description string
	Colors      Colors
	Visible     bool
	ShowScope   bool
	Style       map[string]string
}

// String returns the icon and display text.
func (l *Label) String() string {
	if l.Emoji == "" {
		return l.Text
	}
	return l.Emoji + " " + l.Text
}

// ScopeSuffix returns the de-emphasized scope text, or "" when it is hidden.
func (l *Label) ScopeSuffix() string {
	if !l.ShowScope || l.Scope == "" {
		return ""
	}
	return "(" + l.Scope + ")"
}

// Entry is one commit entry on a host surface.
type Entry interface {
	// Key identifies this entry instance. A host that re-renders an entry
	// produces a new key.
	Key() string
	Title() string
	SetTitle(string)
	// HasLabel reports whether the host already carries a label marker.
	HasLabel() bool
	// InsertLabel places l immediately before the title.
	InsertLabel(l *Label) error
	// UpdateLabel re-applies l's colors and visibility.
	UpdateLabel(l *Label) error
}

type binding struct {
	entry Entry
	label *Label
}

// Renderer decorates entries and tracks every label it produced. It is not
// safe for concurrent use; hosts drive it from their UI loop.
type Renderer struct {
	cfg     *Configuration
	reg     *Registry
	palette *Palette
	bound   map[string]binding
	log     zerolog.Logger
}

// NewRenderer returns a renderer over cfg. A nil palette uses the default.
func NewRenderer(cfg *Configuration, palette *Palette) *Renderer {
	if palette == nil {
		palette = DefaultPalette()
	}
	return &Renderer{
		cfg:     cfg,
		reg:     NewRegistry(cfg.CommitTypes),
		palette: palette,
		bound:   make(map[string]binding),
		log:     logging.Component("renderer"),
	}
}

// Configuration returns the live configuration.
func (r *Renderer) Configuration() *Configuration {
	return r.cfg
}

// Registry returns the registry over the live configuration.
func (r *Renderer) Registry() *Registry {
	return r.reg
}

// Palette returns the palette colors are resolved against.
func (r *Renderer) Palette() *Palette {
	return r.palette
}

// SetConfiguration atomically replaces the live configuration and forgets
// every binding. Hosts rebuild their entries afterwards.
func (r *Renderer) SetConfiguration(cfg *Configuration) {
	r.cfg = cfg
	r.reg = NewRegistry(cfg.CommitTypes)
	r.bound = make(map[string]binding)
}

// Render labels e once. It reports whether a label was inserted.
func (r *Renderer) Render(e Entry, p Parsed, theme Theme) (bool, error) {
	key := e.Key()
	if _, ok := r.bound[key]; ok {
		return false, nil
	}
	if e.HasLabel() {
		return false, nil
	}

	style, ok := r.reg.Resolve(p.Type)
	if !ok {
		return false, nil
	}
	colors, ok := r.palette.Resolve(style.Color, theme)
	if !ok {
		r.log.Debug().Str("type", p.Type).Str("color", style.Color).Msg("unknown color, skipping label")
		return false, nil
	}

	l := &Label{
		Type:      p.Type,
		Scope:     p.Scope,
		Emoji:     style.Emoji,
		Text:      style.Label,
		Colors:    colors,
		Visible:   r.cfg.LabelsVisible,
		ShowScope: r.cfg.ShowScope,
		Style:     r.cfg.LabelStyle,
	}
	if r.cfg.EnableTooltips {
		l.Description = style.Description
	}

	if err := e.InsertLabel(l); err != nil {
		return false, err
	}
	if r.cfg.RemovePrefix {
		e.SetTitle(p.Message)
	}
	r.bound[key] = binding{entry: e, label: l}
	return true, nil
}

// Label returns the label bound to key.
func (r *Renderer) Label(key string) (*Label, bool) {
	b, ok := r.bound[key]
	if !ok {
		return nil, false
	}
	return b.label, true
}

// Len returns the number of bound labels.
func (r *Renderer) Len() int {
	return len(r.bound)
}

// Recolor re-resolves every bound label's colors under theme. Labels whose
// type or color no longer resolves keep their previous colors.
func (r *Renderer) Recolor(theme Theme) int {
	n := 0
	for key, b := range r.bound {
		style, ok := r.reg.Resolve(b.label.Type)
		if !ok {
			continue
		}
		colors, ok := r.palette.Resolve(style.Color, theme)
		if !ok {
			continue
		}
		b.label.Colors = colors
		if err := b.entry.UpdateLabel(b.label); err != nil {
			r.log.Warn().Err(err).Str("entry", key).Msg("recolor failed")
			continue
		}
		n++
	}
	r.log.Debug().Str("theme", string(theme)).Int("labels", n).Msg("recolored")
	return n
}

// SetVisible shows or hides every label and records the choice in the
// configuration.
func (r *Renderer) SetVisible(visible bool) {
	r.cfg.LabelsVisible = visible
	for key, b := range r.bound {
		b.label.Visible = visible
		if err := b.entry.UpdateLabel(b.label); err != nil {
			r.log.Warn().Err(err).Str("entry", key).Msg("visibility update failed")
		}
	}
}

// Prune drops bindings whose keys are not in live.
func (r *Renderer) Prune(live map[string]struct{}) int {
	n := 0
	for key := range r.bound {
		if _, ok := live[key]; !ok {
			delete(r.bound, key)
			n++
		}
	}
	return n
}

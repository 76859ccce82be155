package shared

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Top          key.Binding
	Bottom       key.Binding
	NextRepo     key.Binding
	PrevRepo     key.Binding
	Back         key.Binding
	Forward      key.Binding
	LoadMore     key.Binding
	Refresh      key.Binding
	ToggleGraph  key.Binding
	EditTypes    key.Binding
	ToggleLabels key.Binding
	Exchange     key.Binding
	CycleTheme   key.Binding
	Help         key.Binding
	Quit         key.Binding
	Escape       key.Binding
}

var Keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	NextRepo: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next repo"),
	),
	PrevRepo: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-tab", "prev repo"),
	),
	Back: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "back"),
	),
	Forward: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "forward"),
	),
	LoadMore: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "load more"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	ToggleGraph: key.NewBinding(
		key.WithKeys("ctrl+g"),
		key.WithHelp("C-g", "toggle graph"),
	),
	EditTypes: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit labels"),
	),
	ToggleLabels: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "toggle labels"),
	),
	Exchange: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "export/import"),
	),
	CycleTheme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "cycle color mode"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.EditTypes, k.ToggleLabels, k.Exchange, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom, k.LoadMore},
		{k.NextRepo, k.PrevRepo, k.Back, k.Forward, k.Refresh},
		{k.EditTypes, k.ToggleLabels, k.Exchange, k.CycleTheme},
		{k.ToggleGraph, k.Help, k.Quit, k.Escape},
	}
}

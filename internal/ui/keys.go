package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all application keybindings
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Entry operations
	NewEntry    key.Binding
	EditEntry   key.Binding
	DeleteEntry key.Binding
	Refresh     key.Binding

	// Translation
	Translate key.Binding

	// Copy entry content
	CopyContent key.Binding

	// Details panel
	ToggleDetails key.Binding

	// Filter
	Filter key.Binding

	// General
	Escape key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// Keys is the default keybinding configuration
var Keys = KeyMap{
	// Navigation
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+b"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+f"),
		key.WithHelp("pgdn", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "bottom"),
	),

	// Entry operations
	NewEntry: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new entry"),
	),
	EditEntry: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit entry"),
	),
	DeleteEntry: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "delete entry"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),

	// Translation
	Translate: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "translate entry"),
	),

	// Copy entry content
	CopyContent: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy content"),
	),

	// Details panel
	ToggleDetails: key.NewBinding(
		key.WithKeys("D"),
		key.WithHelp("D", "toggle details"),
	),

	// Filter
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),

	// General
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp returns keybindings for the short help view
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.NewEntry, k.EditEntry, k.DeleteEntry, k.Refresh},
		{k.Translate, k.CopyContent, k.ToggleDetails, k.Filter},
		{k.Help, k.Quit},
	}
}

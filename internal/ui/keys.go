package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application. Key handling
// dispatches through key.Matches on these bindings, so this is the single
// source of truth for what each key does.
type keyMap struct {
	// Global
	Quit       key.Binding
	ForceQuit  key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// Watch control
	ToggleWatch key.Binding
	TestWebhook key.Binding

	// Settings form
	EditSettings key.Binding
	SaveConfig   key.Binding
	NextField    key.Binding
	PrevField    key.Binding
	ApplyForm    key.Binding

	// Activity log
	ToggleFollow key.Binding
	Up           key.Binding
	Down         key.Binding
	Top          key.Binding
	Bottom       key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "Quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit (anywhere)"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),

		// Watch control
		ToggleWatch: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Start/stop watch"),
		),
		TestWebhook: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "Test webhook"),
		),

		// Settings form
		EditSettings: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "Edit settings"),
		),
		SaveConfig: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "Save config"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "Next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "Previous field"),
		),
		ApplyForm: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("enter/esc", "Apply edits"),
		),

		// Activity log
		ToggleFollow: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Toggle follow"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u", "pgup"),
			key.WithHelp("ctrl+u", "Half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d", "pgdown"),
			key.WithHelp("ctrl+d", "Half page down"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Watch
		{k.ToggleWatch, k.TestWebhook},
		// Settings
		{k.EditSettings, k.SaveConfig, k.NextField, k.PrevField, k.ApplyForm},
		// Activity
		{k.ToggleFollow, k.Up, k.Down, k.Top, k.Bottom, k.HalfPageUp, k.HalfPageDown},
		// General
		{k.CycleTheme, k.Help, k.Quit, k.ForceQuit},
	}
}

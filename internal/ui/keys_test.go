package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Bindings dispatched while the activity view is focused. A key appearing in
// two of these would make handleKey ambiguous.
func commandModeBindings(k keyMap) map[string]key.Binding {
	return map[string]key.Binding{
		"Quit":         k.Quit,
		"ForceQuit":    k.ForceQuit,
		"Help":         k.Help,
		"CycleTheme":   k.CycleTheme,
		"ToggleWatch":  k.ToggleWatch,
		"TestWebhook":  k.TestWebhook,
		"EditSettings": k.EditSettings,
		"SaveConfig":   k.SaveConfig,
		"ToggleFollow": k.ToggleFollow,
		"Up":           k.Up,
		"Down":         k.Down,
		"Top":          k.Top,
		"Bottom":       k.Bottom,
		"HalfPageUp":   k.HalfPageUp,
		"HalfPageDown": k.HalfPageDown,
	}
}

func formModeBindings(k keyMap) map[string]key.Binding {
	return map[string]key.Binding{
		"ForceQuit": k.ForceQuit,
		"NextField": k.NextField,
		"PrevField": k.PrevField,
		"ApplyForm": k.ApplyForm,
	}
}

func assertUniqueKeys(t *testing.T, bindings map[string]key.Binding) {
	t.Helper()
	seen := make(map[string]string)
	for name, binding := range bindings {
		for _, k := range binding.Keys() {
			if other, ok := seen[k]; ok {
				t.Errorf("key %q bound to both %s and %s", k, other, name)
			}
			seen[k] = name
		}
	}
}

func TestDefaultKeyMap_NoDuplicateBindings(t *testing.T) {
	keys := DefaultKeyMap()

	t.Run("command mode", func(t *testing.T) {
		assertUniqueKeys(t, commandModeBindings(keys))
	})
	t.Run("form mode", func(t *testing.T) {
		assertUniqueKeys(t, formModeBindings(keys))
	})
}

// Enter belongs to the form's apply binding only. In command mode it must
// not open the settings editor.
func TestModel_EnterDoesNotOpenSettings(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if m.editing {
		t.Fatal("enter opened the settings form in command mode")
	}

	updated, _ = m.Update(keyPress('e'))
	m = updated.(Model)
	if !m.editing {
		t.Fatal("e did not open the settings form")
	}
}

func TestShortHelp_ListedInFullHelp(t *testing.T) {
	keys := DefaultKeyMap()

	full := make(map[string]bool)
	for _, group := range keys.FullHelp() {
		for _, binding := range group {
			full[binding.Help().Key] = true
		}
	}

	short := keys.ShortHelp()
	if len(short) == 0 {
		t.Fatal("ShortHelp() returned no bindings")
	}
	for _, binding := range short {
		if !full[binding.Help().Key] {
			t.Errorf("ShortHelp binding %q missing from FullHelp", binding.Help().Key)
		}
	}
}

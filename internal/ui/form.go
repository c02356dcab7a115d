package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// fieldLabels indexes display labels by form field.
var fieldLabels = [fieldCount]string{
	fieldLogFile:    "Log file",
	fieldWebhookURL: "Webhook URL",
	fieldTemplate:   "Template",
}

// initInputs builds the settings form inputs from the pending config.
func (m *Model) initInputs() {
	for i := range m.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 0
		m.inputs[i] = in
	}
	m.inputs[fieldLogFile].Placeholder = "/path/to/server.log"
	m.inputs[fieldWebhookURL].Placeholder = "https://discord.com/api/webhooks/..."
	m.inputs[fieldTemplate].Placeholder = "🧟 {platform} — **{user}**: {message}"

	m.inputs[fieldLogFile].SetValue(m.config.LogFile)
	m.inputs[fieldWebhookURL].SetValue(m.config.WebhookURL)
	m.inputs[fieldTemplate].SetValue(m.config.Template)
}

// startEditing moves focus into the settings form.
func (m *Model) startEditing() {
	m.editing = true
	m.focusIdx = fieldLogFile
	m.inputs[m.focusIdx].Focus()
}

// stopEditing applies the form values to the pending config and leaves the form.
func (m *Model) stopEditing() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.editing = false
	m.applyInputs()
}

// applyInputs copies the form values into the pending config. A running watch
// is unaffected; the new values take effect on the next start.
func (m *Model) applyInputs() {
	m.config.LogFile = strings.TrimSpace(m.inputs[fieldLogFile].Value())
	m.config.WebhookURL = strings.TrimSpace(m.inputs[fieldWebhookURL].Value())
	m.config.Template = m.inputs[fieldTemplate].Value()
}

// handleFormKey processes keyboard input while the form is focused.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ApplyForm):
		m.stopEditing()
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		m.cycleField(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		m.cycleField(-1)
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focusIdx], cmd = m.inputs[m.focusIdx].Update(msg)
	return m, cmd
}

// cycleField moves form focus by delta, wrapping around.
func (m *Model) cycleField(delta int) {
	m.inputs[m.focusIdx].Blur()
	m.focusIdx = (m.focusIdx + delta + fieldCount) % fieldCount
	m.inputs[m.focusIdx].Focus()
}

// renderForm renders the settings panel.
func (m Model) renderForm() string {
	styles := m.theme.Styles()

	labelWidth := 13
	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Muted)).
		Width(labelWidth)
	focusedLabelStyle := labelStyle.
		Foreground(lipgloss.Color(m.theme.Accent)).
		Bold(true)

	var b strings.Builder
	title := "Settings"
	if m.editing {
		title = "Settings (editing)"
	}
	b.WriteString(styles.AccentText.Bold(true).Render(title))
	b.WriteString("\n")

	for i := range m.inputs {
		label := labelStyle
		if m.editing && i == m.focusIdx {
			label = focusedLabelStyle
		}
		b.WriteString(label.Render(fieldLabels[i]))
		b.WriteString(m.renderInput(i))
		if i < len(m.inputs)-1 {
			b.WriteString("\n")
		}
	}

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.borderColor())).
		Padding(0, 1).
		Width(maxInt(m.width-2, 20))

	return panel.Render(b.String())
}

// renderInput renders one input, showing the raw value when not editing.
func (m Model) renderInput(i int) string {
	if m.editing {
		return m.inputs[i].View()
	}

	styles := m.theme.Styles()
	value := m.inputs[i].Value()
	if value == "" {
		return styles.FaintText.Render("(not set)")
	}
	max := maxInt(m.width-20, 20)
	return styles.Text.Render(truncateMiddle(value, max))
}

// borderColor highlights the form border while editing.
func (m Model) borderColor() string {
	if m.editing {
		return m.theme.BorderFocus
	}
	return m.theme.Border
}

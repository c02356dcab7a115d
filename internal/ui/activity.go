package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// headerLines is the vertical space taken above the activity viewport:
// header, command bar, the settings panel, and the activity title.
const headerLines = 9

// initActivityViewport sizes the activity viewport once the terminal size is known.
func (m *Model) initActivityViewport() {
	m.activityViewport = viewport.New(maxInt(m.width-2, 20), maxInt(m.height-headerLines, 3))
}

// updateActivityViewport refreshes the viewport content from the snapshot.
func (m *Model) updateActivityViewport() {
	if !m.ready {
		return
	}
	m.activityViewport.Width = maxInt(m.width-2, 20)
	m.activityViewport.Height = maxInt(m.height-headerLines, 3)

	styles := m.theme.Styles()
	lines := make([]string, 0, len(m.snapshot.Entries))
	for _, e := range m.snapshot.Entries {
		stamp := styles.FaintText.Render(e.Time.Format("15:04:05"))
		lines = append(lines, stamp+" "+m.styleEntry(e.Text))
	}
	m.activityViewport.SetContent(strings.Join(lines, "\n"))
	if m.follow {
		m.activityViewport.GotoBottom()
	}
}

// styleEntry colors an activity line by its content.
func (m Model) styleEntry(text string) string {
	styles := m.theme.Styles()
	switch {
	case strings.HasPrefix(text, "message delivered"), strings.HasPrefix(text, "webhook test delivered"):
		return styles.SuccessText.Render(text)
	case strings.Contains(text, "failed"), strings.Contains(text, "error"), strings.Contains(text, "not found"):
		return styles.DangerText.Render(text)
	case strings.Contains(text, "skipped"):
		return styles.WarningText.Render(text)
	case strings.HasPrefix(text, "chat parsed"):
		return styles.InfoText.Render(text)
	default:
		return styles.Text.Render(text)
	}
}

// handleActivityKey scrolls the activity viewport.
func (m Model) handleActivityKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		m.follow = false
		m.activityViewport.LineDown(1)
	case key.Matches(msg, m.keys.Up):
		m.follow = false
		m.activityViewport.LineUp(1)
	case key.Matches(msg, m.keys.HalfPageDown):
		m.follow = false
		m.activityViewport.HalfViewDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.follow = false
		m.activityViewport.HalfViewUp()
	case key.Matches(msg, m.keys.Top):
		m.follow = false
		m.activityViewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.follow = true
		m.activityViewport.GotoBottom()
	}
	return m, nil
}

// renderActivity renders the activity log section.
func (m Model) renderActivity() string {
	styles := m.theme.Styles()

	title := "Activity"
	if !m.follow {
		title = "Activity (paused)"
	}

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render(title))
	b.WriteString("\n")

	if len(m.snapshot.Entries) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.Faint)).
			Padding(0, 1)
		b.WriteString(empty.Render("No activity yet. Press s to start watching."))
		return b.String()
	}

	b.WriteString(m.activityViewport.View())
	return b.String()
}

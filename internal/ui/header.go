package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/hordewatch/hordewatch/internal/watch"
	"github.com/hordewatch/hordewatch/internal/webhook"
)

// renderHeader renders the status bar with session state and counters.
func (m Model) renderHeader() string {
	// Header uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	compact := m.width < 90

	var parts []string

	// Logo
	parts = append(parts, bg.Render("hordewatch", styles.Logo))

	// Session state indicator
	parts = append(parts, m.sessionBadge(styles, bg))

	// Counters
	snap := m.snapshot
	if compact {
		parts = append(parts,
			bg.Render("C:", styles.MutedText)+bg.Space()+bg.Render(fmt.Sprintf("%d", snap.ChatCount), styles.Text),
			bg.Render("D:", styles.MutedText)+bg.Space()+bg.Render(fmt.Sprintf("%d", snap.DeliveredCount), countStyle(snap.DeliveredCount, styles.SuccessText, styles.MutedText)),
			bg.Render("F:", styles.MutedText)+bg.Space()+bg.Render(fmt.Sprintf("%d", snap.FailedCount), countStyle(snap.FailedCount, styles.DangerText, styles.MutedText)),
			bg.Render("S:", styles.MutedText)+bg.Space()+bg.Render(fmt.Sprintf("%d", snap.SkippedCount), countStyle(snap.SkippedCount, styles.WarningText, styles.MutedText)),
		)
	} else {
		parts = append(parts,
			bg.Render("Chat:", styles.MutedText)+bg.Space()+bg.Render(fmt.Sprintf("%d", snap.ChatCount), styles.Text),
			bg.Render("Delivered:", styles.MutedText)+bg.Space()+bg.Render(fmt.Sprintf("%d", snap.DeliveredCount), countStyle(snap.DeliveredCount, styles.SuccessText, styles.MutedText)),
			bg.Render("Failed:", styles.MutedText)+bg.Space()+bg.Render(fmt.Sprintf("%d", snap.FailedCount), countStyle(snap.FailedCount, styles.DangerText, styles.MutedText)),
			bg.Render("Skipped:", styles.MutedText)+bg.Space()+bg.Render(fmt.Sprintf("%d", snap.SkippedCount), countStyle(snap.SkippedCount, styles.WarningText, styles.MutedText)),
		)
	}

	// Last delivery outcome
	if outcome := snap.LastOutcome; outcome != nil && outcome.Status == webhook.StatusFailed {
		maxErr := 60
		if compact {
			maxErr = 30
		}
		parts = append(parts,
			bg.Render("LAST", styles.DangerText.Bold(true))+bg.Space()+
				bg.Render(truncate(outcome.Reason, maxErr), styles.DangerText))
	}

	// Timestamp with relative indicator
	if timeStr := m.formatTimestamp(); timeStr != "" {
		parts = append(parts, bg.Render(timeStr, styles.MutedText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// sessionBadge renders the colored session state indicator.
func (m Model) sessionBadge(styles Styles, bg BgStyle) string {
	st := m.snapshot.Session
	color := lipgloss.Color(m.theme.StatusColors[st.String()])
	badge := lipgloss.NewStyle().Foreground(color).Bold(true)

	switch st {
	case watch.StateRunning:
		return bg.Render("● WATCHING", badge)
	case watch.StateStopping:
		return bg.Render("● STOPPING", badge)
	default:
		return bg.Render("● IDLE", badge)
	}
}

// countStyle picks the hot style once the counter is nonzero.
func countStyle(n int, hot, cold lipgloss.Style) lipgloss.Style {
	if n > 0 {
		return hot
	}
	return cold
}

// formatTimestamp formats the last update time with relative indicator.
func (m Model) formatTimestamp() string {
	if m.lastUpdated.IsZero() {
		return ""
	}

	timeSince := time.Since(m.lastUpdated)
	timeStr := m.lastUpdated.Format("15:04:05")

	if timeSince < time.Minute {
		timeStr += " (now)"
	} else if timeSince < time.Hour {
		timeStr += fmt.Sprintf(" (%dm ago)", int(timeSince.Minutes()))
	} else if timeSince < 24*time.Hour {
		timeStr += fmt.Sprintf(" (%dh ago)", int(timeSince.Hours()))
	}

	return timeStr
}

// renderCommandBar renders the command hints bar.
func (m Model) renderCommandBar() string {
	// Command bar uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	if m.editing {
		commands = []cmd{
			{m.keys.NextField.Help().Key, m.keys.NextField.Help().Desc},
			{m.keys.PrevField.Help().Key, m.keys.PrevField.Help().Desc},
			{m.keys.ApplyForm.Help().Key, m.keys.ApplyForm.Help().Desc},
		}
	} else {
		watchLabel := "Start"
		if m.snapshot.Session == watch.StateRunning {
			watchLabel = "Stop"
		}
		commands = []cmd{
			{m.keys.ToggleWatch.Help().Key, watchLabel},
			{m.keys.EditSettings.Help().Key, m.keys.EditSettings.Help().Desc},
			{m.keys.SaveConfig.Help().Key, m.keys.SaveConfig.Help().Desc},
			{m.keys.TestWebhook.Help().Key, m.keys.TestWebhook.Help().Desc},
			{m.keys.ToggleFollow.Help().Key, "Follow"},
			{"j/k", "Scroll"},
		}
		for _, binding := range m.keys.ShortHelp() {
			h := binding.Help()
			commands = append(commands, cmd{h.Key, h.Desc})
		}
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	// Theme indicator
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}

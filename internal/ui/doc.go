// Package ui provides the Bubble Tea terminal interface for hordewatch.
//
// # Architecture Overview
//
// The UI is a single-screen dashboard: a status header, a command bar, the
// settings form, and a scrolling activity log. It renders from state.Store
// snapshots on a timer tick, so the watch pipeline never blocks on drawing.
//
// # Package Structure
//
//   - app.go: Model, Update loop, messages, commands, and the Run function
//   - form.go: settings form (log file, webhook URL, message template)
//   - activity.go: activity log viewport and per-line coloring
//   - header.go: status bar and command hints bar
//   - help.go: help overlay rendered from the key map
//   - keys.go: key bindings
//   - theme.go: color themes and Lipgloss style construction
//   - style_helpers.go: background-safe rendering helpers
//
// # Event Flow
//
//  1. Init schedules the first tick and snapshot fetch
//  2. Each tick syncs the session state into the store and fetches a snapshot
//  3. Key presses start/stop the watch, edit settings, or fire a webhook test
//  4. Long-running actions (start, stop, test, save) run as tea.Cmd and report
//     back as typed messages
//
// # Settings Semantics
//
// The form edits a pending copy of the config. A running watch keeps the
// values it started with; pending edits apply on the next start. "S" persists
// the pending config to disk.
//
// # Key Bindings
//
//   - s: start/stop the watch
//   - e: edit settings (Tab cycles fields, Enter/Esc applies)
//   - S: save config
//   - w: send a webhook test message
//   - f: toggle activity follow mode
//   - j/k, g/G, ctrl+d/u: scroll the activity log
//   - T: cycle theme (persisted to prefs)
//   - h or ?: help overlay
//   - q: quit (Ctrl+C quits from anywhere, including the form)
package ui

// Package config handles loading and saving the watcher configuration file.
//
// # Overview
//
// Hordewatch keeps its settings in a small TOML file. The config captures
// everything a watch session needs: which log file to follow, where to send
// messages, how to format them, and how often to poll.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/hordewatch/config.toml (default)
//  3. If the config file doesn't exist, fall back to built-in defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/hordewatch/config.toml
//   - Log file: empty (must be set before a watch can start)
//   - Webhook URL: empty (deliveries are skipped until set)
//   - Message template: the built-in zombie template from the render package
//   - Poll cadence: 1 second
//
// # TOML Format
//
// Example config.toml:
//
//	log_file = "/srv/7days/output.log"
//	webhook_url = "https://discord.com/api/webhooks/..."
//	message_template = "🧟 {platform} — **{user}**: {message}"
//	poll_seconds = 1
//
// All fields are optional. Tilde expansion is performed on the config path;
// the log_file value is stored as written and validated at watch start.
//
// # Error Handling
//
// Load returns errors for path expansion failures, file read errors (except
// os.ErrNotExist, which triggers defaults), and TOML parsing errors. A
// missing config file is NOT an error, so the watcher works out of the box.
//
// Save creates parent directories as needed and writes the full config, which
// is how the UI persists edits made in the settings form.
package config

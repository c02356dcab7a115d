// Package render turns a chat event into webhook message content using a
// user-supplied template with {platform}, {user}, and {message} placeholders.
package render

import "strings"

// DefaultTemplate is used when the configured template is empty.
const DefaultTemplate = "🧟 {platform} — **{user}**: {message}"

// Message renders the template with the given field values. Every occurrence
// of each placeholder is replaced in a single pass over the template, so a
// placeholder-like string inside a field value is never substituted again.
// An empty or blank template falls back to DefaultTemplate.
func Message(template, platform, user, message string) string {
	if strings.TrimSpace(template) == "" {
		template = DefaultTemplate
	}
	r := strings.NewReplacer(
		"{platform}", platform,
		"{user}", user,
		"{message}", message,
	)
	return r.Replace(template)
}

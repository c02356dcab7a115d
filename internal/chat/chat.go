// Package chat extracts chat messages from server log lines and classifies
// the sender's platform.
package chat

import (
	"regexp"
	"strings"
)

// Event is one chat message extracted from a server log line.
type Event struct {
	PlatformID string // raw platform-qualified sender id, e.g. "Steam_76561198..."
	User       string // display name
	Message    string // message body, edge quotes stripped
}

// chatLine matches the server's chat log grammar:
//
//	Chat (from 'Steam_123', Entity): 'Zed': hello world
//
// The qualifier after the platform id is optional. The pattern is searched,
// not anchored, because the server prefixes lines with timestamps and thread
// markers.
var chatLine = regexp.MustCompile(`Chat \(from '([^']+)'(?:,.*?)?\): '([^']+)': (.+)$`)

// ParseLine extracts a chat Event from a log line. The second return value is
// false when the line does not match the grammar; that is the normal case for
// most server output (heartbeats, joins, saves) and is not an error.
func ParseLine(line string) (Event, bool) {
	m := chatLine.FindStringSubmatch(line)
	if m == nil {
		return Event{}, false
	}
	return Event{
		PlatformID: m[1],
		User:       m[2],
		Message:    strings.Trim(m[3], " '\""),
	}, true
}

// PlatformLabel maps a platform-qualified id to a display label. Matching is
// case-sensitive and checks prefixes in order; unknown ids are returned
// unmodified.
func PlatformLabel(platformID string) string {
	switch {
	case strings.HasPrefix(platformID, "Xbox_"):
		return "Xbox"
	case strings.HasPrefix(platformID, "PSN_"):
		return "PSN"
	case strings.HasPrefix(platformID, "Steam_"):
		return "Steam"
	}
	return platformID
}

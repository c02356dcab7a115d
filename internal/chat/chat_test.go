package chat

import (
	"fmt"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		want  Event
		match bool
	}{
		{
			name:  "steam chat with entity qualifier",
			line:  "Chat (from 'Steam_123', Entity): 'Zed': hello world",
			want:  Event{PlatformID: "Steam_123", User: "Zed", Message: "hello world"},
			match: true,
		},
		{
			name:  "no qualifier",
			line:  "Chat (from 'Xbox_42'): 'Ana': hi",
			want:  Event{PlatformID: "Xbox_42", User: "Ana", Message: "hi"},
			match: true,
		},
		{
			name:  "timestamp prefix",
			line:  "2026-08-29T10:00:01 INF Chat (from 'PSN_9', entity id '171', to 'Global'): 'Rey': gg",
			want:  Event{PlatformID: "PSN_9", User: "Rey", Message: "gg"},
			match: true,
		},
		{
			name:  "message quotes stripped",
			line:  "Chat (from 'Steam_1', Entity): 'Bo': 'quoted message'",
			want:  Event{PlatformID: "Steam_1", User: "Bo", Message: "quoted message"},
			match: true,
		},
		{
			name:  "colon inside message preserved",
			line:  "Chat (from 'Steam_1', Entity): 'Bo': note: meet at base",
			want:  Event{PlatformID: "Steam_1", User: "Bo", Message: "note: meet at base"},
			match: true,
		},
		{
			name: "heartbeat line",
			line: "Time: 125.32m FPS: 38.43 Heap: 512.3MB",
		},
		{
			name: "join line",
			line: "Player 'Zed' joined the game",
		},
		{
			name: "empty line",
			line: "",
		},
		{
			name: "chat prefix without grammar",
			line: "Chat window opened",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLine(tt.line)
			if ok != tt.match {
				t.Fatalf("ParseLine(%q) matched = %v, want %v", tt.line, ok, tt.match)
			}
			if !tt.match {
				if got != (Event{}) {
					t.Fatalf("ParseLine(%q) = %#v, want zero Event on no match", tt.line, got)
				}
				return
			}
			if got != tt.want {
				t.Fatalf("ParseLine(%q) = %#v, want %#v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseLine_RoundTrip(t *testing.T) {
	// Reformatting captured fields must produce a line the grammar matches
	// again with identical captures.
	events := []Event{
		{PlatformID: "Steam_123", User: "Zed", Message: "hello world"},
		{PlatformID: "Xbox_1", User: "Ana", Message: "a: b: c"},
		{PlatformID: "Custom_77", User: "Sol", Message: "x"},
	}
	for _, ev := range events {
		line := fmt.Sprintf("Chat (from '%s', Entity): '%s': %s", ev.PlatformID, ev.User, ev.Message)
		got, ok := ParseLine(line)
		if !ok {
			t.Fatalf("ParseLine(%q) did not match", line)
		}
		if got != ev {
			t.Fatalf("round trip = %#v, want %#v", got, ev)
		}
	}
}

func TestPlatformLabel(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"Xbox_42", "Xbox"},
		{"PSN_9", "PSN"},
		{"Steam_76561198000000000", "Steam"},
		{"Steam_", "Steam"},
		{"steam_1", "steam_1"}, // case-sensitive
		{"EOS_abc", "EOS_abc"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := PlatformLabel(tt.id); got != tt.want {
			t.Errorf("PlatformLabel(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

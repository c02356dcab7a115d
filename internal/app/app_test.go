package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hordewatch/hordewatch/internal/chat"
	"github.com/hordewatch/hordewatch/internal/config"
	"github.com/hordewatch/hordewatch/internal/state"
	"github.com/hordewatch/hordewatch/internal/watch"
	"github.com/hordewatch/hordewatch/internal/webhook"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name  string
		event watch.Event
		want  string
	}{
		{
			name:  "diagnostic",
			event: watch.Event{Kind: watch.KindDiagnostic, Text: "watching file: /tmp/x"},
			want:  "watching file: /tmp/x",
		},
		{
			name: "chat",
			event: watch.Event{
				Kind:     watch.KindChat,
				Platform: "Steam",
				Chat:     chat.Event{PlatformID: "Steam_1", User: "Zed", Message: "hello"},
			},
			want: "chat: Steam - Zed: hello",
		},
		{
			name: "delivery with reason",
			event: watch.Event{
				Kind:    watch.KindDelivery,
				Outcome: webhook.Outcome{Status: webhook.StatusFailed, Reason: "HTTP 404 - nope"},
			},
			want: "delivery failed: HTTP 404 - nope",
		},
		{
			name: "delivery without reason",
			event: watch.Event{
				Kind:    watch.KindDelivery,
				Outcome: webhook.Outcome{Status: webhook.StatusDelivered},
			},
			want: "delivery delivered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := describe(tt.event); got != tt.want {
				t.Fatalf("describe = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConsume_FoldsEventsIntoStore(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	path := filepath.Join(t.TempDir(), "server.log")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	session := watch.NewSession(nil)
	store := state.NewStore(0)
	go consume(ctx, session, store, false)

	// Empty webhook URL means deliveries are skipped without network access.
	if err := session.Start(watch.Config{FilePath: path, PollInterval: 10 * time.Millisecond}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(session.Stop)

	time.Sleep(50 * time.Millisecond)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("open for append: %v", err)
	}
	if _, err := f.WriteString("Chat (from 'Steam_1', Entity): 'Zed': hi\n"); err != nil {
		t.Fatalf("append: %v", err)
	}
	_ = f.Close()

	deadline := time.Now().Add(2 * time.Second)
	for {
		snap := store.Snapshot()
		if snap.ChatCount == 1 && snap.SkippedCount == 1 {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("store = %+v, want 1 chat and 1 skipped delivery", snap)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestShutdown_StopsActiveSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.log")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	session := watch.NewSession(nil)
	if err := session.Start(watch.Config{FilePath: path, PollInterval: 10 * time.Millisecond}); err != nil {
		t.Fatalf("Start: %v", err)
	}

	shutdown(session)
	if session.State() != watch.StateIdle {
		t.Fatalf("State = %v after shutdown, want idle", session.State())
	}

	// Idle shutdown is a no-op.
	shutdown(session)
	if session.State() != watch.StateIdle {
		t.Fatalf("State = %v after second shutdown, want idle", session.State())
	}
}

func TestRunHeadless_MissingFileErrors(t *testing.T) {
	session := watch.NewSession(nil)
	cfg := config.Config{LogFile: filepath.Join(t.TempDir(), "absent.log"), PollSeconds: 1}

	err := runHeadless(context.Background(), session, cfg)
	if err == nil {
		t.Fatal("runHeadless returned nil error for missing file")
	}
	if !strings.Contains(err.Error(), "start watch") {
		t.Fatalf("error = %q, want start watch failure", err)
	}
}

func TestRunHeadless_ExitsWhenSourceDies(t *testing.T) {
	old := stateCheckEvery
	stateCheckEvery = 20 * time.Millisecond
	t.Cleanup(func() { stateCheckEvery = old })

	session := watch.NewSession(nil)
	// A directory passes the existence check but fails on read.
	cfg := config.Config{LogFile: t.TempDir(), PollSeconds: 1}

	done := make(chan error, 1)
	go func() { done <- runHeadless(context.Background(), session, cfg) }()

	select {
	case err := <-done:
		if err == nil || !strings.Contains(err.Error(), "watch ended") {
			t.Fatalf("error = %v, want watch ended", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("runHeadless did not return after source death")
	}
}

func TestRunHeadless_StopsOnContextCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.log")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	session := watch.NewSession(nil)
	cfg := config.Config{LogFile: path, PollSeconds: 1}

	done := make(chan error, 1)
	go func() { done <- runHeadless(ctx, session, cfg) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("runHeadless returned %v on cancel, want nil", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("runHeadless did not return after cancel")
	}
	if session.State() != watch.StateIdle {
		t.Fatalf("State = %v after cancel, want idle", session.State())
	}
}

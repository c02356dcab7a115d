package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hordewatch/hordewatch/internal/render"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LogFile != "" {
		t.Fatalf("LogFile = %q, want empty", cfg.LogFile)
	}
	if cfg.WebhookURL != "" {
		t.Fatalf("WebhookURL = %q, want empty", cfg.WebhookURL)
	}
	if cfg.Template != render.DefaultTemplate {
		t.Fatalf("Template = %q, want default", cfg.Template)
	}
	if cfg.PollSeconds != defaultPollSeconds {
		t.Fatalf("PollSeconds = %d, want %d", cfg.PollSeconds, defaultPollSeconds)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
log_file = "  /var/log/server.log  "
webhook_url = "  https://discord.test/api/webhooks/1/x  "
message_template = "{user}: {message}"
poll_seconds = 3
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LogFile != "/var/log/server.log" {
		t.Fatalf("LogFile = %q, want trimmed path", cfg.LogFile)
	}
	if cfg.WebhookURL != "https://discord.test/api/webhooks/1/x" {
		t.Fatalf("WebhookURL = %q, want trimmed URL", cfg.WebhookURL)
	}
	if cfg.Template != "{user}: {message}" {
		t.Fatalf("Template = %q, want the configured template", cfg.Template)
	}
	if cfg.PollSeconds != 3 {
		t.Fatalf("PollSeconds = %d, want 3", cfg.PollSeconds)
	}
}

func TestLoad_EmptyAndInvalidValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
message_template = "   "
poll_seconds = 0
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Template != render.DefaultTemplate {
		t.Fatalf("Template = %q, want default", cfg.Template)
	}
	if cfg.PollSeconds != defaultPollSeconds {
		t.Fatalf("PollSeconds = %d, want %d", cfg.PollSeconds, defaultPollSeconds)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`log_file = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.toml")
	want := Config{
		LogFile:     "/srv/game/output.log",
		WebhookURL:  "https://discord.test/api/webhooks/2/y",
		Template:    "{platform} {user} {message}",
		PollSeconds: 5,
	}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got != want {
		t.Fatalf("round trip = %+v, want %+v", got, want)
	}
}

func TestPollInterval(t *testing.T) {
	if got := (Config{PollSeconds: 4}).PollInterval(); got != 4*time.Second {
		t.Fatalf("PollInterval = %v, want 4s", got)
	}
	if got := (Config{}).PollInterval(); got != time.Second {
		t.Fatalf("PollInterval zero value = %v, want 1s", got)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

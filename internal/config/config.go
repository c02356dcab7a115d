package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/hordewatch/hordewatch/internal/render"
)

// Config captures the watcher settings persisted between runs.
type Config struct {
	LogFile     string `toml:"log_file"`
	WebhookURL  string `toml:"webhook_url"`
	Template    string `toml:"message_template"`
	PollSeconds int    `toml:"poll_seconds"`
}

const (
	defaultConfigPath  = "~/.config/hordewatch/config.toml"
	defaultPollSeconds = 1
)

// DefaultPath returns the default configuration file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns a config with every field at its built-in value.
func Default() Config {
	return Config{
		Template:    render.DefaultTemplate,
		PollSeconds: defaultPollSeconds,
	}
}

// Load reads the config from the given path, falling back to defaults when
// the file is missing. A path of "" means the default location.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(bytes, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.LogFile = strings.TrimSpace(cfg.LogFile)
	cfg.WebhookURL = strings.TrimSpace(cfg.WebhookURL)
	if strings.TrimSpace(cfg.Template) == "" {
		cfg.Template = render.DefaultTemplate
	}
	if cfg.PollSeconds < 1 {
		cfg.PollSeconds = defaultPollSeconds
	}

	return cfg, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg Config) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	bytes, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// PollInterval converts the configured cadence to a duration.
func (c Config) PollInterval() time.Duration {
	secs := c.PollSeconds
	if secs < 1 {
		secs = defaultPollSeconds
	}
	return time.Duration(secs) * time.Second
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hordewatch/hordewatch/internal/config"
	"github.com/hordewatch/hordewatch/internal/prefs"
	"github.com/hordewatch/hordewatch/internal/state"
	"github.com/hordewatch/hordewatch/internal/ui"
	"github.com/hordewatch/hordewatch/internal/watch"
)

// stateCheckEvery is how often headless mode re-checks the session state.
var stateCheckEvery = 500 * time.Millisecond

// Options configure the hordewatch application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/hordewatch/prefs.toml
	PollEvery  int    // seconds; zero uses the configured cadence
	Headless   bool   // watch without the TUI, logging events to stderr
}

// Run boots hordewatch until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.PollEvery > 0 {
		cfg.PollSeconds = opts.PollEvery
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	session := watch.NewSession(nil)
	store := state.NewStore(0)

	// Fold session events into the store off the render path.
	go consume(ctx, session, store, opts.Headless)

	// No background unit may outlive Run: quitting the TUI (or any headless
	// exit) must stop an active session before teardown completes.
	defer shutdown(session)

	if opts.Headless {
		return runHeadless(ctx, session, cfg)
	}

	uiOpts := ui.Options{
		Context:    ctx,
		Session:    session,
		Store:      store,
		Config:     cfg,
		ConfigPath: opts.ConfigPath,
		ThemeName:  userPrefs.Theme,
		PrefsPath:  opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

// shutdown stops any active session so the tail goroutine and in-flight
// deliveries are wound down before the process exits.
func shutdown(session *watch.Session) {
	if session.State() != watch.StateIdle {
		session.Stop()
	}
}

// consume drains the session event channel into the store. With echo set it
// also mirrors each event to the standard logger for headless runs.
func consume(ctx context.Context, session *watch.Session, store *state.Store, echo bool) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-session.Events():
			store.Apply(ev)
			store.SetSession(session.State())
			if echo {
				log.Print(describe(ev))
			}
		}
	}
}

// describe renders one event as a log line.
func describe(ev watch.Event) string {
	switch ev.Kind {
	case watch.KindChat:
		return fmt.Sprintf("chat: %s - %s: %s", ev.Platform, ev.Chat.User, ev.Chat.Message)
	case watch.KindDelivery:
		if ev.Outcome.Reason != "" {
			return fmt.Sprintf("delivery %s: %s", ev.Outcome.Status, ev.Outcome.Reason)
		}
		return fmt.Sprintf("delivery %s", ev.Outcome.Status)
	default:
		return ev.Text
	}
}

// runHeadless starts the watch immediately and blocks until the context is
// cancelled or the session settles back to idle on its own.
func runHeadless(ctx context.Context, session *watch.Session, cfg config.Config) error {
	err := session.Start(watch.Config{
		FilePath:     cfg.LogFile,
		PollInterval: cfg.PollInterval(),
		WebhookURL:   cfg.WebhookURL,
		Template:     cfg.Template,
	})
	if err != nil {
		return fmt.Errorf("start watch: %w", err)
	}

	ticker := time.NewTicker(stateCheckEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			session.Stop()
			return nil
		case <-ticker.C:
			if session.State() == watch.StateIdle {
				return fmt.Errorf("watch ended: log file became unreadable")
			}
		}
	}
}

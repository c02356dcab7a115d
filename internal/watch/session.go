package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/hordewatch/hordewatch/internal/chat"
	"github.com/hordewatch/hordewatch/internal/render"
	"github.com/hordewatch/hordewatch/internal/tail"
	"github.com/hordewatch/hordewatch/internal/webhook"
)

// State is the session lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateStopping
)

// String returns the display label for a state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	}
	return "unknown"
}

// EventKind discriminates pipeline events.
type EventKind int

const (
	// KindDiagnostic is a human-readable status line.
	KindDiagnostic EventKind = iota
	// KindChat is an extracted chat message.
	KindChat
	// KindDelivery is the outcome of one dispatch attempt.
	KindDelivery
)

// Event is a single pipeline notification. Events for one session are emitted
// in the order lines were read from the file.
type Event struct {
	Kind EventKind
	Time time.Time

	Text string // KindDiagnostic

	Chat     chat.Event // KindChat
	Platform string     // KindChat: display label

	Content string          // KindDelivery: rendered message
	Outcome webhook.Outcome // KindDelivery
}

// Config is the immutable snapshot a session runs with. Editing the live
// configuration has no effect on a session that is already running.
type Config struct {
	FilePath     string
	PollInterval time.Duration
	WebhookURL   string
	Template     string
}

// Dispatcher sends rendered content to a webhook endpoint. *webhook.Client
// implements it; tests substitute a recorder.
type Dispatcher interface {
	Post(ctx context.Context, url, content string) webhook.Outcome
}

var _ Dispatcher = (*webhook.Client)(nil)

const (
	// stopWait bounds how long Stop blocks for the background unit to exit.
	// Exceeding it is tolerated: the state still settles to idle.
	stopWait = 2 * time.Second

	eventBuffer = 256
)

// Session owns one watch lifecycle: it runs the line source on a background
// goroutine, wires extractor, classifier, renderer, and dispatcher behind it,
// and reports everything through a typed event channel.
type Session struct {
	dispatcher Dispatcher

	mu     sync.Mutex
	state  State
	cancel context.CancelFunc
	done   chan struct{}

	events chan Event
}

// NewSession builds an idle session. A nil dispatcher uses a webhook.Client.
func NewSession(d Dispatcher) *Session {
	if d == nil {
		d = webhook.NewClient()
	}
	return &Session{
		dispatcher: d,
		events:     make(chan Event, eventBuffer),
	}
}

// Events returns the session's event stream. The channel is never closed; it
// carries events across successive Start/Stop cycles.
func (s *Session) Events() <-chan Event {
	return s.events
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start validates cfg and launches the background unit. It fails without a
// state change when the session is not idle, the file path is blank, or the
// file does not exist; each failure is also reported as a diagnostic.
func (s *Session) Start(cfg Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle {
		return fmt.Errorf("watch session is %s, not idle", s.state)
	}
	if strings.TrimSpace(cfg.FilePath) == "" {
		s.emit(s.diagf("log file path is empty"))
		return errors.New("log file path is empty")
	}
	if _, err := os.Stat(cfg.FilePath); err != nil {
		s.emit(s.diagf("log file path is invalid or does not exist: %s", cfg.FilePath))
		return fmt.Errorf("stat log file: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done
	s.state = StateRunning
	s.emit(s.diagf("watching file: %s", cfg.FilePath))

	go s.run(ctx, cfg, done)
	return nil
}

// Stop signals the background unit and blocks, bounded by stopWait, until it
// confirms termination. The session settles to idle either way.
func (s *Session) Stop() {
	s.mu.Lock()
	if s.state != StateRunning {
		s.mu.Unlock()
		return
	}
	s.state = StateStopping
	cancel := s.cancel
	done := s.done
	s.mu.Unlock()

	cancel()
	select {
	case <-done:
	case <-time.After(stopWait):
		// Tolerated: the unit exits on its next poll iteration.
	}

	s.mu.Lock()
	s.state = StateIdle
	s.cancel = nil
	s.done = nil
	s.mu.Unlock()
	s.emit(s.diagf("watch stopped"))
}

// run is the single background unit: the tail loop plus the downstream
// pipeline, executed inline so event order matches file order.
func (s *Session) run(ctx context.Context, cfg Config, done chan struct{}) {
	defer close(done)

	src := &tail.Source{Path: cfg.FilePath, Interval: cfg.PollInterval}
	err := src.Run(ctx, func(line string) {
		s.process(ctx, cfg, line)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		if errors.Is(err, tail.ErrNotFound) {
			s.emit(s.diagf("file was not found: %s", cfg.FilePath))
		} else {
			s.emit(s.diagf("watch error: %v", err))
		}
	}

	// A fatal source error must settle the session so the caller's view
	// reflects reality. Stop transitions are left to Stop itself.
	s.mu.Lock()
	if s.state == StateRunning {
		s.state = StateIdle
		s.cancel = nil
		s.done = nil
	}
	s.mu.Unlock()
}

// process runs one line through extractor, classifier, renderer, dispatcher.
func (s *Session) process(ctx context.Context, cfg Config, line string) {
	s.emit(s.diagf("line detected: %s", line))

	ev, ok := chat.ParseLine(line)
	if !ok {
		return
	}

	label := chat.PlatformLabel(ev.PlatformID)
	s.emit(s.diagf("chat parsed -> platform: %s, user: %s, message: %s", ev.PlatformID, ev.User, ev.Message))
	s.emit(Event{Kind: KindChat, Time: time.Now(), Chat: ev, Platform: label})

	content := render.Message(cfg.Template, label, ev.User, ev.Message)
	s.emit(s.diagf("preparing delivery: %s", content))

	url := strings.TrimSpace(cfg.WebhookURL)
	var outcome webhook.Outcome
	if url == "" {
		outcome = webhook.Skipped("empty webhook")
	} else {
		outcome = s.dispatcher.Post(ctx, url, content)
	}
	s.emit(Event{Kind: KindDelivery, Time: time.Now(), Content: content, Outcome: outcome})
}

func (s *Session) diagf(format string, args ...any) Event {
	return Event{
		Kind: KindDiagnostic,
		Time: time.Now(),
		Text: fmt.Sprintf(format, args...),
	}
}

func (s *Session) emit(ev Event) {
	s.events <- ev
}

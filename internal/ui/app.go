package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/hordewatch/hordewatch/internal/config"
	"github.com/hordewatch/hordewatch/internal/prefs"
	"github.com/hordewatch/hordewatch/internal/state"
	"github.com/hordewatch/hordewatch/internal/watch"
	"github.com/hordewatch/hordewatch/internal/webhook"
)

// testContent is the message posted by the manual webhook test.
const testContent = "🔔 webhook test from hordewatch"

// Form field indexes.
const (
	fieldLogFile = iota
	fieldWebhookURL
	fieldTemplate
	fieldCount
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Session    *watch.Session
	Store      *state.Store
	Config     config.Config
	ConfigPath string
	ThemeName  string
	PrefsPath  string
	PollTick   time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	session    *watch.Session
	store      *state.Store
	config     config.Config // pending edits, applied on next start
	configPath string
	prefsPath  string
	pollTick   time.Duration
	hook       *webhook.Client

	// UI state
	theme   Theme
	keys    keyMap
	width   int
	height  int
	ready   bool
	editing bool // form focused vs activity log focused

	// Form state
	inputs   [fieldCount]textinput.Model
	focusIdx int

	// Activity log state
	activityViewport viewport.Model
	follow           bool

	// Data state
	snapshot    state.Snapshot
	lastUpdated time.Time

	// Help overlay
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = 500 * time.Millisecond
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		ctx:        ctx,
		session:    opts.Session,
		store:      opts.Store,
		config:     opts.Config,
		configPath: opts.ConfigPath,
		prefsPath:  prefsPath,
		pollTick:   pollTick,
		hook:       webhook.NewClient(),
		theme:      GetTheme(themeName),
		keys:       DefaultKeyMap(),
		follow:     true,
	}
	m.initInputs()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.pollTick),
	}
	// Fetch snapshot immediately on start
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initActivityViewport()
		}
		m.ready = true
		m.updateActivityViewport()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.lastUpdated = time.Now()
		m.updateActivityViewport()
		return m, nil

	case startResultMsg:
		// Start failures already surface as diagnostic events; the session
		// state indicator follows on the next tick either way.
		return m, syncSessionCmd(m.store, m.session)

	case stoppedMsg:
		return m, syncSessionCmd(m.store, m.session)

	case testResultMsg:
		m.noteTestOutcome(webhook.Outcome(msg))
		return m, fetchSnapshotCmd(m.store)

	case saveResultMsg:
		if msg.err != nil {
			m.store.Append("config save failed: " + msg.err.Error())
		} else {
			m.store.Append("configuration saved")
		}
		return m, fetchSnapshotCmd(m.store)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes the help overlay
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// ctrl+c always quits, even while editing
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.editing {
		return m.handleFormKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case key.Matches(msg, m.keys.EditSettings):
		m.startEditing()
		return m, nil

	case key.Matches(msg, m.keys.ToggleWatch):
		return m.toggleWatch()

	case key.Matches(msg, m.keys.TestWebhook):
		m.store.Append("sending webhook test")
		return m, testWebhookCmd(m.ctx, m.hook, m.config.WebhookURL)

	case key.Matches(msg, m.keys.SaveConfig):
		return m, saveConfigCmd(m.configPath, m.config)

	case key.Matches(msg, m.keys.ToggleFollow):
		m.follow = !m.follow
		m.updateActivityViewport()
		return m, nil
	}

	return m.handleActivityKey(msg)
}

// toggleWatch starts the session from the pending config, or stops it.
func (m Model) toggleWatch() (tea.Model, tea.Cmd) {
	switch m.session.State() {
	case watch.StateIdle:
		return m, startWatchCmd(m.session, watch.Config{
			FilePath:     m.config.LogFile,
			PollInterval: m.config.PollInterval(),
			WebhookURL:   m.config.WebhookURL,
			Template:     m.config.Template,
		})
	case watch.StateRunning:
		return m, stopWatchCmd(m.session)
	default:
		// Stopping; ignore until it settles
		return m, nil
	}
}

// noteTestOutcome appends the webhook test result to the activity log.
func (m *Model) noteTestOutcome(outcome webhook.Outcome) {
	switch outcome.Status {
	case webhook.StatusDelivered:
		m.store.Append("webhook test delivered")
	case webhook.StatusSkipped:
		m.store.Append("webhook test skipped: " + outcome.Reason)
	case webhook.StatusFailed:
		m.store.Append("webhook test failed: " + outcome.Reason)
	}
}

// handleTick processes the polling tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	if m.store != nil {
		if m.session != nil {
			m.store.SetSession(m.session.State())
		}
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return m, tea.Batch(cmds...)
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	// Header line 1: logo + session status + counters
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	// Header line 2: command bar
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	// Settings form
	b.WriteString(m.renderForm())
	b.WriteString("\n")

	// Activity log
	b.WriteString(m.renderActivity())

	return b.String()
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type startResultMsg struct{ err error }

type stoppedMsg struct{}

type testResultMsg webhook.Outcome

type saveResultMsg struct{ err error }

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func syncSessionCmd(store *state.Store, session *watch.Session) tea.Cmd {
	return func() tea.Msg {
		store.SetSession(session.State())
		return snapshotMsg(store.Snapshot())
	}
}

func startWatchCmd(session *watch.Session, cfg watch.Config) tea.Cmd {
	return func() tea.Msg {
		return startResultMsg{err: session.Start(cfg)}
	}
}

func stopWatchCmd(session *watch.Session) tea.Cmd {
	return func() tea.Msg {
		session.Stop()
		return stoppedMsg{}
	}
}

func testWebhookCmd(ctx context.Context, hook *webhook.Client, url string) tea.Cmd {
	return func() tea.Msg {
		if strings.TrimSpace(url) == "" {
			return testResultMsg(webhook.Skipped("empty webhook"))
		}
		return testResultMsg(hook.Post(ctx, url, testContent))
	}
}

func saveConfigCmd(path string, cfg config.Config) tea.Cmd {
	return func() tea.Msg {
		return saveResultMsg{err: config.Save(path, cfg)}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		// Context cancellation is a clean shutdown, not a failure.
		return nil
	}
	return err
}

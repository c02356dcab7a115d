// Package app wires the hordewatch pieces together and owns process lifetime.
//
// # Responsibilities
//
// Run loads configuration and preferences, builds the watch session and the
// snapshot store, starts the event consumer goroutine, and then hands control
// to either the TUI or the headless loop:
//
//	config.Load ─┐
//	prefs.Load  ─┼─▶ watch.Session ──events──▶ consume ──▶ state.Store
//	             │                                             │
//	             └──────────▶ ui.Run (TUI)  ◀──snapshots───────┘
//	                     or runHeadless
//
// # Headless Mode
//
// With Options.Headless the watch starts immediately from the loaded config
// and every event is mirrored to the standard logger. The loop exits when the
// context is cancelled (clean shutdown) or when the session settles back to
// idle on its own, which means the log file became unreadable mid-run.
//
// # Shutdown
//
// Context cancellation drives shutdown everywhere: the consumer goroutine
// returns, headless mode stops the session, and the TUI quits its program.
// Run additionally stops any still-active session before returning, so
// quitting the TUI never leaves the tail goroutine or an in-flight delivery
// behind.
package app

// Package watch owns the pipeline lifecycle: it starts the tail source on a
// background goroutine, feeds each line through the chat extractor, platform
// classifier, template renderer, and webhook dispatcher, and reports progress
// through a typed event channel.
//
// # State Machine
//
//	Idle ──Start──▶ Running ──Stop──▶ Stopping ──▶ Idle
//	                   │
//	                   └── source fatal error ──▶ Idle
//
// Start is only valid from Idle and validates the configured file path before
// anything is launched. Stop cancels the unit and waits, bounded by two
// seconds, for confirmation; a unit that misses the bound is tolerated and
// the state settles to Idle regardless. A source that dies on its own (file
// vanished, read error) also settles the session to Idle so the caller's view
// matches reality.
//
// # Events
//
// Three kinds flow over one channel, preserving the order lines were read:
//
//   - KindDiagnostic: human-readable status ("line detected: ...",
//     "chat parsed -> ...", failures)
//   - KindChat: the extracted message plus its platform label
//   - KindDelivery: the rendered content and classified dispatch outcome
//
// Errors never cross the goroutine boundary as panics or returned faults;
// every failure is exactly one diagnostic event.
//
// # Configuration Snapshot
//
// Config is copied at Start. Edits made to the application's pending
// configuration while a session runs take effect on the next Start only.
package watch

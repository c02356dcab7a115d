// Package state provides the thread-safe snapshot store between the watch
// session and the UI.
//
// # Architecture
//
// The store sits between two independent goroutines:
//
//	Producer (event consumer):     Consumer (UI tick):
//	┌──────────────────┐          ┌──────────────────┐
//	│ session.Events() │          │                  │
//	│       ↓          │          │ store.Snapshot() │
//	│  store.Apply()   │─(mutex)─▶│       ↓          │
//	│  store.Append()  │          │   render views   │
//	└──────────────────┘          └──────────────────┘
//
// The session's typed events are folded into a bounded activity log plus
// running counters (chats seen, deliveries, failures, skips). The UI polls
// snapshots on its own tick, so the background pipeline never blocks on
// rendering.
//
// # Snapshot Semantics
//
// Snapshot returns copies: the entries slice and the last outcome are cloned
// so the UI can hold a snapshot across further updates without races. The
// activity log is trimmed from the front once it exceeds the configured
// limit; only recent history matters for display.
//
// The zero Store is not used; NewStore sets the entry limit.
package state

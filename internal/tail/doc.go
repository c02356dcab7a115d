// Package tail implements the line source for the watch pipeline: incremental
// reading of newly appended lines from a single log file.
//
// # Behavior
//
// Run opens the file once, seeks to the current end, and then loops:
//
//  1. Attempt to read up to the next newline.
//  2. On a complete line: trim surrounding whitespace, discard if empty,
//     otherwise hand it to the caller.
//  3. At EOF: buffer any trailing fragment and sleep for the poll interval
//     before retrying. A line is only delivered once its newline arrives.
//
// Cancellation is cooperative. The context is checked once per iteration and
// while sleeping, so stop latency is bounded by one poll interval.
//
// # Error Handling
//
// A file that does not exist at open time returns ErrNotFound and the source
// never starts. Any read error after that terminates the run; the file is not
// reopened. In particular log rotation and truncation are not detected — the
// original tool had the same limitation and recovery here would invent
// behavior the rest of the pipeline does not expect. The watch session
// surfaces the returned error as a diagnostic and settles back to idle.
//
// # Design Rationale
//
// The loop is deliberately a plain bufio read with a sleep rather than a
// filesystem-notification watcher: the target files live on network shares
// and container mounts where notification support is unreliable, and the
// poll interval is part of the user-facing configuration.
package tail

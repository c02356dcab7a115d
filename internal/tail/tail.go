package tail

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// ErrNotFound reports that the log file did not exist when the source opened.
var ErrNotFound = errors.New("log file not found")

const defaultInterval = time.Second

// Source incrementally reads lines appended to a single file, starting at the
// current end of file. Lines written before Run is called are never replayed.
type Source struct {
	Path     string
	Interval time.Duration // poll interval; <= 0 uses one second
}

// Run opens the file, seeks to its end, and delivers each newly appended
// non-empty line (trimmed of surrounding whitespace) to handle, in file
// order. It blocks until ctx is cancelled or a read error occurs.
//
// A missing file at open time returns ErrNotFound. Any read error terminates
// the loop and is returned wrapped; the source never reopens the file, so a
// rotated or truncated log ends the run rather than being silently resumed.
func (s *Source) Run(ctx context.Context, handle func(line string)) error {
	interval := s.Interval
	if interval <= 0 {
		interval = defaultInterval
	}

	file, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, s.Path)
		}
		return fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = file.Close() }()

	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seek log end: %w", err)
	}

	reader := bufio.NewReader(file)
	var partial strings.Builder

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		chunk, err := reader.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return fmt.Errorf("read log: %w", err)
			}
			// No complete line yet. Hold any trailing fragment until the
			// writer finishes it, then sleep for one poll interval.
			partial.WriteString(chunk)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(interval):
			}
			continue
		}

		line := strings.TrimSpace(partial.String() + chunk)
		partial.Reset()
		if line == "" {
			continue
		}
		handle(line)
	}
}

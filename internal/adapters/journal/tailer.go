package journal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/time/rate"
)

// Tailer follows a live journal file, delivering events appended while the
// game is running. Polling is throttled by a rate limiter so a quiet journal
// does not busy-loop the disk.
type Tailer struct {
	path    string
	limiter *rate.Limiter
	fromEnd bool
}

// NewTailer creates a Tailer polling at most pollsPerSecond times per second.
// When fromEnd is true, events already in the file are skipped and only new
// ones are delivered.
func NewTailer(path string, pollsPerSecond float64, fromEnd bool) *Tailer {
	if pollsPerSecond <= 0 {
		pollsPerSecond = 2
	}
	return &Tailer{
		path:    path,
		limiter: rate.NewLimiter(rate.Limit(pollsPerSecond), 1),
		fromEnd: fromEnd,
	}
}

// Follow delivers each appended event to handle until the context is
// cancelled or handle returns an error. Partial lines (the game flushes
// mid-write) are buffered until their newline arrives.
func (t *Tailer) Follow(ctx context.Context, handle func(*Event) error) error {
	file, err := os.Open(t.path)
	if err != nil {
		return fmt.Errorf("failed to open journal file: %w", err)
	}
	defer file.Close()

	if t.fromEnd {
		if _, err := file.Seek(0, io.SeekEnd); err != nil {
			return fmt.Errorf("failed to seek journal file: %w", err)
		}
	}

	reader := bufio.NewReader(file)
	var partial strings.Builder

	for {
		if err := t.limiter.Wait(ctx); err != nil {
			// Context cancelled or deadline exceeded
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		for {
			chunk, err := reader.ReadString('\n')
			if err == io.EOF {
				// Keep whatever was flushed so far and poll again
				partial.WriteString(chunk)
				break
			}
			if err != nil {
				return fmt.Errorf("failed to read journal file: %w", err)
			}

			line := strings.TrimSpace(partial.String() + chunk)
			partial.Reset()
			if line == "" {
				continue
			}

			event, parseErr := ParseEvent([]byte(line))
			if parseErr != nil {
				continue
			}
			if err := handle(event); err != nil {
				return err
			}
		}
	}
}

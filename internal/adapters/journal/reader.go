package journal

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Reader reads newline-delimited journal events from a stream. Blank and
// malformed lines are skipped and counted rather than aborting the stream:
// the game occasionally truncates a line when it crashes mid-write.
type Reader struct {
	scanner    *bufio.Scanner
	parseFails int
}

// NewReader creates a Reader over a journal stream
func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	// Journal lines can exceed the default scanner buffer (Friends events
	// with long names, NavRoute dumps), so allow up to 1 MiB.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Reader{scanner: scanner}
}

// Next returns the next parseable event, or io.EOF when the stream ends
func (r *Reader) Next() (*Event, error) {
	for r.scanner.Scan() {
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}

		event, err := ParseEvent([]byte(line))
		if err != nil {
			r.parseFails++
			continue
		}
		return event, nil
	}

	if err := r.scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read journal stream: %w", err)
	}
	return nil, io.EOF
}

// ParseFailures returns how many lines were skipped as unparseable
func (r *Reader) ParseFailures() int {
	return r.parseFails
}

// ReadAll drains the stream and returns every parseable event
func ReadAll(r io.Reader) ([]*Event, int, error) {
	reader := NewReader(r)

	var events []*Event
	for {
		event, err := reader.Next()
		if err == io.EOF {
			return events, reader.ParseFailures(), nil
		}
		if err != nil {
			return events, reader.ParseFailures(), err
		}
		events = append(events, event)
	}
}

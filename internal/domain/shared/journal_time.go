package shared

import (
	"fmt"
	"time"
)

// JournalTimeLayout is the wire format used by the game journal for event
// timestamps (UTC, second precision, e.g. "2024-01-01T12:00:00Z").
const JournalTimeLayout = "2006-01-02T15:04:05Z"

// JournalTime wraps a single point in time exchanged with the game journal.
// It converts between the journal wire format and an epoch-millisecond
// representation used for cross-system comparison.
//
// Round-trip law: AsJournalTimestamp() returns the exact wire string that
// FromJournalTimestamp accepted.
type JournalTime struct {
	t time.Time
}

// NewJournalTime creates a JournalTime from a journal wire timestamp
func NewJournalTime(timestamp string) (*JournalTime, error) {
	jt := &JournalTime{}
	if err := jt.FromJournalTimestamp(timestamp); err != nil {
		return nil, err
	}
	return jt, nil
}

// NewZeroJournalTime creates a JournalTime holding the epoch.
// Used for freshly discovered commanders that have not seen any event yet.
func NewZeroJournalTime() *JournalTime {
	return &JournalTime{t: time.Unix(0, 0).UTC()}
}

// FromJournalTimestamp parses a journal wire timestamp, replacing any
// previously held value. A malformed timestamp is a parse error and leaves
// the held value untouched.
func (jt *JournalTime) FromJournalTimestamp(timestamp string) error {
	if timestamp == "" {
		return NewInvalidTimestampError(timestamp, fmt.Errorf("timestamp cannot be empty"))
	}

	parsed, err := time.Parse(JournalTimeLayout, timestamp)
	if err != nil {
		return NewInvalidTimestampError(timestamp, err)
	}

	jt.t = parsed.UTC()
	return nil
}

// AsJournalTimestamp serializes back to the journal wire format
func (jt *JournalTime) AsJournalTimestamp() string {
	return jt.t.UTC().Format(JournalTimeLayout)
}

// AsEpochMillis returns the held instant as milliseconds since the Unix epoch
func (jt *JournalTime) AsEpochMillis() int64 {
	return jt.t.UnixMilli()
}

// Time returns the held instant
func (jt *JournalTime) Time() time.Time {
	return jt.t
}

// Copy returns an independent JournalTime holding the same instant
func (jt *JournalTime) Copy() *JournalTime {
	return &JournalTime{t: jt.t}
}

func (jt *JournalTime) String() string {
	return fmt.Sprintf("JournalTime(%s)", jt.AsJournalTimestamp())
}

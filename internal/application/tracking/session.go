package tracking

import (
	"context"
	"time"
)

// Session records one tracking run: a journal replay or a live watch.
// Snapshots in the database can be correlated back to the run that wrote
// them.
type Session struct {
	ID        string
	Commander string
	Source    string // journal file path, or "live"
	StartedAt time.Time
	Events    int
}

// SessionRepository persists tracking sessions
type SessionRepository interface {
	Save(ctx context.Context, session *Session) error
	ListByCommander(ctx context.Context, name string) ([]*Session, error)
}

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmdrwatch/cmdrwatch/internal/application/tracking"
	"github.com/cmdrwatch/cmdrwatch/internal/application/tracking/commands"
	"github.com/cmdrwatch/cmdrwatch/internal/domain/shared"
)

type inMemorySessionRepo struct {
	sessions []*tracking.Session
}

func (r *inMemorySessionRepo) Save(ctx context.Context, session *tracking.Session) error {
	r.sessions = append(r.sessions, session)
	return nil
}

func (r *inMemorySessionRepo) ListByCommander(ctx context.Context, name string) ([]*tracking.Session, error) {
	var matched []*tracking.Session
	for _, session := range r.sessions {
		if session.Commander == name {
			matched = append(matched, session)
		}
	}
	return matched, nil
}

func TestStartSession(t *testing.T) {
	repo := &inMemorySessionRepo{}
	clock := shared.NewMockClock(time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC))
	handler := commands.NewStartSessionHandler(repo, clock)

	resp, err := handler.Handle(context.Background(), &commands.StartSessionCommand{
		Commander: "Jameson",
		Source:    "/logs/Journal.01.log",
	})
	require.NoError(t, err)

	session := resp.Session
	assert.Contains(t, session.ID, "replay-")
	assert.Equal(t, "Jameson", session.Commander)
	assert.Equal(t, clock.CurrentTime, session.StartedAt)
	require.Len(t, repo.sessions, 1)

	resp, err = handler.Handle(context.Background(), &commands.StartSessionCommand{
		Commander: "Jameson",
		Source:    "live",
	})
	require.NoError(t, err)
	assert.Contains(t, resp.Session.ID, "watch-")
}

func TestStartSession_Validation(t *testing.T) {
	handler := commands.NewStartSessionHandler(&inMemorySessionRepo{}, nil)

	_, err := handler.Handle(context.Background(), &commands.StartSessionCommand{Source: "live"})
	assert.Error(t, err)

	_, err = handler.Handle(context.Background(), &commands.StartSessionCommand{Commander: "Jameson"})
	assert.Error(t, err)
}

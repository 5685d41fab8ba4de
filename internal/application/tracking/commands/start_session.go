package commands

import (
	"context"
	"fmt"

	"github.com/cmdrwatch/cmdrwatch/internal/application/tracking"
	"github.com/cmdrwatch/cmdrwatch/internal/domain/shared"
	"github.com/cmdrwatch/cmdrwatch/pkg/utils"
)

// StartSessionCommand records the start of a tracking run
type StartSessionCommand struct {
	Commander string
	Source    string // journal file path, or "live"
}

// StartSessionResponse carries the recorded session
type StartSessionResponse struct {
	Session *tracking.Session
}

// StartSessionHandler handles the StartSession command
type StartSessionHandler struct {
	sessionRepo tracking.SessionRepository
	clock       shared.Clock
}

// NewStartSessionHandler creates a new StartSessionHandler
func NewStartSessionHandler(sessionRepo tracking.SessionRepository, clock shared.Clock) *StartSessionHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &StartSessionHandler{sessionRepo: sessionRepo, clock: clock}
}

// Handle executes the StartSession command
func (h *StartSessionHandler) Handle(ctx context.Context, cmd *StartSessionCommand) (*StartSessionResponse, error) {
	if cmd.Commander == "" {
		return nil, fmt.Errorf("commander name is required")
	}
	if cmd.Source == "" {
		return nil, fmt.Errorf("source is required")
	}

	session := &tracking.Session{
		ID:        utils.GenerateSessionID(sessionKind(cmd.Source)),
		Commander: cmd.Commander,
		Source:    cmd.Source,
		StartedAt: h.clock.Now(),
	}

	if err := h.sessionRepo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to record tracking session: %w", err)
	}

	return &StartSessionResponse{Session: session}, nil
}

func sessionKind(source string) string {
	if source == "live" {
		return "watch"
	}
	return "replay"
}

package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmdrwatch/cmdrwatch/internal/domain/commander"
	"github.com/cmdrwatch/cmdrwatch/internal/domain/shared"
)

// DiscoverCommanderCommand resolves the tracked state for a commander name,
// creating a fresh one when nothing is known yet
type DiscoverCommanderCommand struct {
	Name string
}

// DiscoverCommanderResponse carries the resolved state
type DiscoverCommanderResponse struct {
	Cmdr *commander.Commander
	// New is true when no prior snapshot existed
	New bool
}

// DiscoverCommanderHandler handles the DiscoverCommander command
type DiscoverCommanderHandler struct {
	commanderRepo commander.Repository
}

// NewDiscoverCommanderHandler creates a new DiscoverCommanderHandler
func NewDiscoverCommanderHandler(commanderRepo commander.Repository) *DiscoverCommanderHandler {
	return &DiscoverCommanderHandler{commanderRepo: commanderRepo}
}

// Handle executes the DiscoverCommander command
func (h *DiscoverCommanderHandler) Handle(ctx context.Context, cmd *DiscoverCommanderCommand) (*DiscoverCommanderResponse, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("commander name is required")
	}

	existing, err := h.commanderRepo.FindByName(ctx, cmd.Name)
	if err == nil {
		return &DiscoverCommanderResponse{Cmdr: existing}, nil
	}

	// Only a not-tracked miss may fall through to creation. Any other
	// failure (transient read error, undecodable row) must not be papered
	// over with a fresh snapshot that would upsert away the stored one.
	var notTracked *shared.CommanderError
	if !errors.As(err, &notTracked) {
		return nil, fmt.Errorf("failed to look up commander %s: %w", cmd.Name, err)
	}

	cmdr := commander.NewCommander(cmd.Name)
	cmdr.Inception()

	if err := h.commanderRepo.Save(ctx, cmdr); err != nil {
		return nil, fmt.Errorf("failed to persist new commander: %w", err)
	}

	return &DiscoverCommanderResponse{Cmdr: cmdr, New: true}, nil
}

package queries

import (
	"context"
	"fmt"

	"github.com/cmdrwatch/cmdrwatch/internal/domain/commander"
)

// GetStatusQuery fetches the believed state of a tracked commander
type GetStatusQuery struct {
	Name string
}

// CommanderStatus is the read model handed to presentation layers
type CommanderStatus struct {
	Name            string
	Ship            string // canonical, "Unknown" when never observed
	Location        string // pretty-printed system/place
	Place           string // "Unknown" when never observed
	GameMode        string
	Wing            []string
	Friends         []string
	InOpen          bool
	InSoloOrPrivate bool
	BadNeighborhood bool
	PartialStatus   bool
	Timestamp       string
	EpochMillis     int64
}

// GetStatusHandler handles the GetStatus query
type GetStatusHandler struct {
	commanderRepo commander.Repository
}

// NewGetStatusHandler creates a new GetStatusHandler
func NewGetStatusHandler(commanderRepo commander.Repository) *GetStatusHandler {
	return &GetStatusHandler{commanderRepo: commanderRepo}
}

// Handle executes the GetStatus query
func (h *GetStatusHandler) Handle(ctx context.Context, query *GetStatusQuery) (*CommanderStatus, error) {
	if query.Name == "" {
		return nil, fmt.Errorf("commander name is required")
	}

	cmdr, err := h.commanderRepo.FindByName(ctx, query.Name)
	if err != nil {
		return nil, err
	}

	return StatusFromCommander(cmdr), nil
}

// StatusFromCommander builds the read model from a live commander state
func StatusFromCommander(cmdr *commander.Commander) *CommanderStatus {
	ship, ok := cmdr.Ship()
	if !ok {
		ship = commander.UnknownVehicle
	}

	return &CommanderStatus{
		Name:            cmdr.Name(),
		Ship:            ship,
		Location:        cmdr.Location().PrettyPrint(),
		Place:           cmdr.DisplayPlace(),
		GameMode:        string(cmdr.GameMode()),
		Wing:            cmdr.Wing(),
		Friends:         cmdr.Friends(),
		InOpen:          cmdr.InOpen(),
		InSoloOrPrivate: cmdr.InSoloOrPrivate(),
		BadNeighborhood: cmdr.InBadNeighborhood(),
		PartialStatus:   cmdr.HasPartialStatus(),
		Timestamp:       cmdr.Timestamp(),
		EpochMillis:     cmdr.TimestampEpochMillis(),
	}
}

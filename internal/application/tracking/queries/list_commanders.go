package queries

import (
	"context"

	"github.com/cmdrwatch/cmdrwatch/internal/domain/commander"
)

// ListCommandersQuery fetches the believed state of every tracked commander
type ListCommandersQuery struct{}

// ListCommandersHandler handles the ListCommanders query
type ListCommandersHandler struct {
	commanderRepo commander.Repository
}

// NewListCommandersHandler creates a new ListCommandersHandler
func NewListCommandersHandler(commanderRepo commander.Repository) *ListCommandersHandler {
	return &ListCommandersHandler{commanderRepo: commanderRepo}
}

// Handle executes the ListCommanders query
func (h *ListCommandersHandler) Handle(ctx context.Context, query *ListCommandersQuery) ([]*CommanderStatus, error) {
	commanders, err := h.commanderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	statuses := make([]*CommanderStatus, 0, len(commanders))
	for _, cmdr := range commanders {
		statuses = append(statuses, StatusFromCommander(cmdr))
	}
	return statuses, nil
}

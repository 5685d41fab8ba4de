package queries

import (
	"context"

	"github.com/cmdrwatch/cmdrwatch/internal/domain/commander"
)

// AssessBountyQuery formats a bounty value and checks its significance
// against the configured threshold
type AssessBountyQuery struct {
	Value int64
}

// BountyAssessment is the result of an AssessBounty query
type BountyAssessment struct {
	Value       int64
	Label       string
	Significant bool
}

// AssessBountyHandler handles the AssessBounty query
type AssessBountyHandler struct {
	threshold int64
}

// NewAssessBountyHandler creates a new AssessBountyHandler with the
// configured significance threshold
func NewAssessBountyHandler(threshold int64) *AssessBountyHandler {
	return &AssessBountyHandler{threshold: threshold}
}

// Handle executes the AssessBounty query
func (h *AssessBountyHandler) Handle(ctx context.Context, query *AssessBountyQuery) (*BountyAssessment, error) {
	bounty, err := commander.NewBounty(query.Value, h.threshold)
	if err != nil {
		return nil, err
	}

	return &BountyAssessment{
		Value:       query.Value,
		Label:       bounty.PrettyPrint(),
		Significant: bounty.IsSignificant(),
	}, nil
}

package commander

import "github.com/cmdrwatch/cmdrwatch/internal/domain/shared"

// Snapshot is a flat, copyable image of a Commander used to move state in
// and out of storage. Nil pointer fields mean "never observed".
type Snapshot struct {
	Name         string
	Ship         *string
	StarSystem   *string
	Place        *string
	Security     *string
	GameMode     GameMode
	PreviousMode GameMode
	Wing         []string
	PreviousWing []string
	Friends      []string
	FromBirth    bool
	Timestamp    string // journal wire format; "" or the epoch means never updated
}

// Snapshot captures the commander's current state. All slices and pointers
// are independent copies.
func (c *Commander) Snapshot() Snapshot {
	snap := Snapshot{
		Name:         c.name,
		GameMode:     c.gameMode,
		PreviousMode: c.previousMode,
		Wing:         sortedMembers(c.wing),
		PreviousWing: sortedMembers(c.previousWing),
		Friends:      sortedMembers(c.friends),
		FromBirth:    c.fromBirth,
		Timestamp:    c.timestamp.AsJournalTimestamp(),
	}

	snap.Ship = copyOptional(c.ship)
	if system, ok := c.location.StarSystem(); ok {
		snap.StarSystem = &system
	}
	if place, ok := c.location.Place(); ok {
		snap.Place = &place
	}
	if security, ok := c.location.Security(); ok {
		snap.Security = &security
	}

	return snap
}

// RestoreCommander reconstructs a Commander from a stored snapshot. This is
// for repository use when rehydrating state, not for normal operation.
func RestoreCommander(snap Snapshot) (*Commander, error) {
	if snap.Name == "" {
		return nil, shared.NewValidationError("name", "cannot be empty")
	}

	c := NewCommander(snap.Name)
	c.ship = copyOptional(snap.Ship)
	c.location.starSystem = copyOptional(snap.StarSystem)
	c.location.place = copyOptional(snap.Place)
	c.location.security = copyOptional(snap.Security)
	c.gameMode = snap.GameMode
	c.previousMode = snap.PreviousMode
	c.fromBirth = snap.FromBirth

	for _, member := range snap.Wing {
		c.wing[member] = struct{}{}
	}
	for _, member := range snap.PreviousWing {
		c.previousWing[member] = struct{}{}
	}
	for _, friend := range snap.Friends {
		c.friends[friend] = struct{}{}
	}

	if snap.Timestamp != "" {
		if err := c.timestamp.FromJournalTimestamp(snap.Timestamp); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func copyOptional(value *string) *string {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}

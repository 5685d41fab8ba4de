package journal

import (
	"encoding/json"
	"fmt"
)

// Event names emitted by the game journal that the tracker reacts to
const (
	EventLoadGame        = "LoadGame"
	EventLocation        = "Location"
	EventFSDJump         = "FSDJump"
	EventSupercruiseExit = "SupercruiseExit"
	EventDocked          = "Docked"
	EventUndocked        = "Undocked"
	EventLoadout         = "Loadout"
	EventShipyardSwap    = "ShipyardSwap"
	EventDied            = "Died"
	EventResurrect       = "Resurrect"
	EventWingJoin        = "WingJoin"
	EventWingAdd         = "WingAdd"
	EventWingLeave       = "WingLeave"
	EventFriends         = "Friends"
)

// Event is one journal line: the envelope fields every event carries plus
// the raw payload for event-specific decoding.
type Event struct {
	Timestamp string `json:"timestamp"`
	Name      string `json:"event"`

	raw []byte
}

// ParseEvent parses a single journal line
func ParseEvent(line []byte) (*Event, error) {
	var event Event
	if err := json.Unmarshal(line, &event); err != nil {
		return nil, fmt.Errorf("malformed journal line: %w", err)
	}
	if event.Name == "" {
		return nil, fmt.Errorf("journal line has no event name")
	}

	event.raw = make([]byte, len(line))
	copy(event.raw, line)
	return &event, nil
}

// Decode unmarshals the event's full payload into an event-specific struct
func (e *Event) Decode(payload interface{}) error {
	if err := json.Unmarshal(e.raw, payload); err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", e.Name, err)
	}
	return nil
}

// Event-specific payloads. Field names follow the journal's JSON keys.

// LoadGameEvent announces the commander at session start
type LoadGameEvent struct {
	Commander string `json:"Commander"`
	Ship      string `json:"Ship"`
	GameMode  string `json:"GameMode"`
}

// LocationEvent is the full position fix emitted at session start
type LocationEvent struct {
	StarSystem     string `json:"StarSystem"`
	Body           string `json:"Body"`
	SystemSecurity string `json:"SystemSecurity"`
	Docked         bool   `json:"Docked"`
	StationName    string `json:"StationName"`
}

// FSDJumpEvent is an arrival in a new star system
type FSDJumpEvent struct {
	StarSystem     string `json:"StarSystem"`
	SystemSecurity string `json:"SystemSecurity"`
}

// SupercruiseExitEvent is a drop near a body
type SupercruiseExitEvent struct {
	StarSystem string `json:"StarSystem"`
	Body       string `json:"Body"`
}

// DockedEvent is a completed docking at a station
type DockedEvent struct {
	StarSystem  string `json:"StarSystem"`
	StationName string `json:"StationName"`
}

// LoadoutEvent announces the current ship after a swap or module change
type LoadoutEvent struct {
	Ship string `json:"Ship"`
}

// ShipyardSwapEvent is a ship swap at a shipyard
type ShipyardSwapEvent struct {
	ShipType string `json:"ShipType"`
}

// WingJoinEvent is a join into a wing with the listed members
type WingJoinEvent struct {
	Others []string `json:"Others"`
}

// WingAddEvent is another commander joining the current wing
type WingAddEvent struct {
	Name string `json:"Name"`
}

// FriendsEvent is a friends-list status change
type FriendsEvent struct {
	Status string `json:"Status"`
	Name   string `json:"Name"`
}

// Friends event statuses relevant to membership
const (
	FriendStatusRequested = "Requested"
	FriendStatusDeclined  = "Declined"
	FriendStatusAdded     = "Added"
	FriendStatusLost      = "Lost"
	FriendStatusOnline    = "Online"
	FriendStatusOffline   = "Offline"
)

package commands

import (
	"context"
	"fmt"

	"github.com/cmdrwatch/cmdrwatch/internal/adapters/journal"
	"github.com/cmdrwatch/cmdrwatch/internal/domain/commander"
)

// ApplyEventCommand applies one journal event to a commander's state
type ApplyEventCommand struct {
	Cmdr  *commander.Commander
	Event *journal.Event
}

// ApplyEventResponse reports what the event did to the state
type ApplyEventResponse struct {
	// Handled is false for event types the tracker does not react to
	Handled bool
	// Changed is true when a tracked field actually changed
	Changed bool
}

// ApplyEventHandler routes journal events to the commander's update
// operations and persists the snapshot whenever something changed
type ApplyEventHandler struct {
	commanderRepo commander.Repository
}

// NewApplyEventHandler creates a new ApplyEventHandler
func NewApplyEventHandler(commanderRepo commander.Repository) *ApplyEventHandler {
	return &ApplyEventHandler{commanderRepo: commanderRepo}
}

// Handle executes the ApplyEvent command
func (h *ApplyEventHandler) Handle(ctx context.Context, cmd *ApplyEventCommand) (*ApplyEventResponse, error) {
	if cmd.Cmdr == nil {
		return nil, fmt.Errorf("commander is required")
	}
	if cmd.Event == nil {
		return nil, fmt.Errorf("event is required")
	}

	handled, changed, err := h.route(cmd.Cmdr, cmd.Event)
	if err != nil {
		return nil, err
	}

	if changed {
		if err := h.commanderRepo.Save(ctx, cmd.Cmdr); err != nil {
			return nil, fmt.Errorf("failed to persist commander snapshot: %w", err)
		}
	}

	return &ApplyEventResponse{Handled: handled, Changed: changed}, nil
}

func (h *ApplyEventHandler) route(cmdr *commander.Commander, event *journal.Event) (handled, changed bool, err error) {
	ts := event.Timestamp

	switch event.Name {
	case journal.EventLoadGame:
		var payload journal.LoadGameEvent
		if err := event.Decode(&payload); err != nil {
			return false, false, err
		}
		shipChanged, err := cmdr.UpdateShipIfObsolete(payload.Ship, ts)
		if err != nil {
			return true, false, err
		}
		modeChanged := cmdr.GameMode() != commander.GameMode(payload.GameMode)
		cmdr.SetGameMode(commander.GameMode(payload.GameMode))
		return true, shipChanged || modeChanged, nil

	case journal.EventLocation:
		var payload journal.LocationEvent
		if err := event.Decode(&payload); err != nil {
			return false, false, err
		}
		systemChanged, err := cmdr.UpdateStarSystemIfObsolete(payload.StarSystem, ts)
		if err != nil {
			return true, false, err
		}
		placeChanged := false
		if place := locationPlace(&payload); place != "" {
			placeChanged, err = cmdr.UpdatePlaceIfObsolete(place, ts)
			if err != nil {
				return true, systemChanged, err
			}
		}
		if payload.SystemSecurity != "" {
			cmdr.SetLocationSecurity(payload.SystemSecurity)
		}
		return true, systemChanged || placeChanged, nil

	case journal.EventFSDJump:
		var payload journal.FSDJumpEvent
		if err := event.Decode(&payload); err != nil {
			return false, false, err
		}
		systemChanged, err := cmdr.UpdateStarSystemIfObsolete(payload.StarSystem, ts)
		if err != nil {
			return true, false, err
		}
		if payload.SystemSecurity != "" {
			cmdr.SetLocationSecurity(payload.SystemSecurity)
		}
		return true, systemChanged, nil

	case journal.EventSupercruiseExit:
		var payload journal.SupercruiseExitEvent
		if err := event.Decode(&payload); err != nil {
			return false, false, err
		}
		changed, err := cmdr.UpdatePlaceIfObsolete(payload.Body, ts)
		return true, changed, err

	case journal.EventDocked:
		var payload journal.DockedEvent
		if err := event.Decode(&payload); err != nil {
			return false, false, err
		}
		systemChanged, err := cmdr.UpdateStarSystemIfObsolete(payload.StarSystem, ts)
		if err != nil {
			return true, false, err
		}
		placeChanged, err := cmdr.UpdatePlaceIfObsolete(payload.StationName, ts)
		return true, systemChanged || placeChanged, err

	case journal.EventUndocked:
		// Leaving the pad invalidates the station as the believed place
		changed, err := cmdr.UpdatePlaceIfObsolete(commander.UnknownPlace, ts)
		return true, changed, err

	case journal.EventLoadout:
		var payload journal.LoadoutEvent
		if err := event.Decode(&payload); err != nil {
			return false, false, err
		}
		changed, err := cmdr.UpdateShipIfObsolete(payload.Ship, ts)
		return true, changed, err

	case journal.EventShipyardSwap:
		var payload journal.ShipyardSwapEvent
		if err := event.Decode(&payload); err != nil {
			return false, false, err
		}
		changed, err := cmdr.UpdateShipIfObsolete(payload.ShipType, ts)
		return true, changed, err

	case journal.EventDied:
		cmdr.Killed()
		return true, true, nil

	case journal.EventResurrect:
		cmdr.Resurrect()
		return true, true, nil

	case journal.EventWingJoin:
		var payload journal.WingJoinEvent
		if err := event.Decode(&payload); err != nil {
			return false, false, err
		}
		cmdr.JoinWing(payload.Others)
		return true, true, nil

	case journal.EventWingAdd:
		var payload journal.WingAddEvent
		if err := event.Decode(&payload); err != nil {
			return false, false, err
		}
		cmdr.AddToWing(payload.Name)
		return true, true, nil

	case journal.EventWingLeave:
		cmdr.LeaveWing()
		return true, true, nil

	case journal.EventFriends:
		var payload journal.FriendsEvent
		if err := event.Decode(&payload); err != nil {
			return false, false, err
		}
		switch payload.Status {
		case journal.FriendStatusAdded, journal.FriendStatusOnline, journal.FriendStatusOffline:
			cmdr.AddFriend(payload.Name)
			return true, true, nil
		case journal.FriendStatusLost, journal.FriendStatusDeclined:
			cmdr.RemoveFriend(payload.Name)
			return true, true, nil
		}
		return true, false, nil

	default:
		return false, false, nil
	}
}

// locationPlace picks the place label from a Location fix: the station when
// docked, otherwise the body
func locationPlace(payload *journal.LocationEvent) string {
	if payload.Docked && payload.StationName != "" {
		return payload.StationName
	}
	return payload.Body
}

package commander

import (
	"fmt"
	"sort"

	"github.com/cmdrwatch/cmdrwatch/internal/domain/shared"
)

// GameMode is the session mode a commander is playing in
type GameMode string

const (
	GameModeUnset GameMode = ""
	GameModeSolo  GameMode = "Solo"
	GameModeGroup GameMode = "Group"
	GameModeOpen  GameMode = "Open"
)

// UnknownPlace is the display label used when the place within a system has
// not been observed yet
const UnknownPlace = "Unknown"

// Commander tracks the believed current state of a single player derived
// from an ordered stream of journal events: location, ship, game mode and
// wing/friends membership, stamped with the time of the last accepted
// update.
//
// A Commander assumes one ingestion pipeline feeding it events strictly
// sequentially and provides no internal locking. Wing and friends sets hold
// commander names only, never references to other Commander instances.
type Commander struct {
	name         string
	ship         *string
	location     *Location
	gameMode     GameMode
	previousMode GameMode
	wing         map[string]struct{}
	previousWing map[string]struct{}
	friends      map[string]struct{}
	fromBirth    bool
	timestamp    *shared.JournalTime
}

// NewCommander creates a Commander with nothing observed yet
func NewCommander(name string) *Commander {
	return &Commander{
		name:         name,
		location:     NewLocation(),
		wing:         make(map[string]struct{}),
		previousWing: make(map[string]struct{}),
		friends:      make(map[string]struct{}),
		timestamp:    shared.NewZeroJournalTime(),
	}
}

// Name returns the commander's name, set once at discovery
func (c *Commander) Name() string {
	return c.name
}

// Ship returns the canonical ship name and whether a ship has been observed
func (c *Commander) Ship() (string, bool) {
	if c.ship == nil {
		return "", false
	}
	return *c.ship, true
}

// SetShip records the commander's ship, canonicalizing the journal identifier
func (c *Commander) SetShip(ship string) {
	canonical := Canonicalize(&ship)
	c.ship = &canonical
}

// Location returns the owned location value
func (c *Commander) Location() *Location {
	return c.location
}

// StarSystem returns the believed star system and whether it is known
func (c *Commander) StarSystem() (string, bool) {
	return c.location.StarSystem()
}

// SetStarSystem records the believed star system
func (c *Commander) SetStarSystem(starSystem string) {
	c.location.starSystem = &starSystem
}

// Place returns the believed place within the system and whether it is known
func (c *Commander) Place() (string, bool) {
	return c.location.Place()
}

// DisplayPlace returns the place label for rendering, substituting a fixed
// placeholder when no place has been observed
func (c *Commander) DisplayPlace() string {
	place, ok := c.location.Place()
	if !ok {
		return UnknownPlace
	}
	return place
}

// SetPlace records the believed place within the system
func (c *Commander) SetPlace(place string) {
	c.location.place = &place
}

// SetLocationSecurity records the security classification of the current system
func (c *Commander) SetLocationSecurity(securityState string) {
	c.location.security = &securityState
}

// GameMode returns the current session mode (GameModeUnset if not observed)
func (c *Commander) GameMode() GameMode {
	return c.gameMode
}

// SetGameMode records the current session mode
func (c *Commander) SetGameMode(mode GameMode) {
	c.gameMode = mode
}

// PreviousGameMode returns the mode snapshotted at combat loss
func (c *Commander) PreviousGameMode() GameMode {
	return c.previousMode
}

// FromBirth reports whether this state was created from scratch and has not
// been backfilled from any prior observation
func (c *Commander) FromBirth() bool {
	return c.fromBirth
}

// Timestamp returns the wire-format timestamp of the last accepted update
func (c *Commander) Timestamp() string {
	return c.timestamp.AsJournalTimestamp()
}

// TimestampEpochMillis returns the last accepted update time in epoch milliseconds
func (c *Commander) TimestampEpochMillis() int64 {
	return c.timestamp.AsEpochMillis()
}

// SetTimestamp replaces the last-update timestamp from a wire-format value
func (c *Commander) SetTimestamp(edTimestamp string) error {
	return c.timestamp.FromJournalTimestamp(edTimestamp)
}

// Derived predicates

// InSoloOrPrivate reports whether the commander plays outside the open mode
func (c *Commander) InSoloOrPrivate() bool {
	return c.gameMode == GameModeSolo || c.gameMode == GameModeGroup
}

// InOpen reports whether the commander plays in open mode
func (c *Commander) InOpen() bool {
	return c.gameMode == GameModeOpen
}

// InBadNeighborhood reports whether the believed system is anarchy or lawless
func (c *Commander) InBadNeighborhood() bool {
	return c.location.IsAnarchyOrLawless()
}

// HasPartialStatus reports whether ship, star system or place is still
// unobserved. Ingestion uses this to decide whether more events are needed
// before the state is complete.
func (c *Commander) HasPartialStatus() bool {
	_, hasSystem := c.location.StarSystem()
	_, hasPlace := c.location.Place()
	return c.ship == nil || !hasSystem || !hasPlace
}

// IsFriendOrInWing reports whether the given commander is a friend or a
// current wing mate
func (c *Commander) IsFriendOrInWing(interlocutor string) bool {
	if _, ok := c.friends[interlocutor]; ok {
		return true
	}
	_, ok := c.wing[interlocutor]
	return ok
}

// Group-membership lifecycle

// Inception resets the group state for a commander (re)discovered from
// scratch. Valid from any state.
func (c *Commander) Inception() {
	c.fromBirth = true
	c.previousMode = GameModeUnset
	c.previousWing = make(map[string]struct{})
	c.wing = make(map[string]struct{})
}

// Killed records a combat loss: the current mode and wing move to their
// "previous" snapshots and the current ones are cleared until resurrection.
//
// Calling Killed twice before Resurrect overwrites the snapshots with the
// already-cleared values, losing the pre-death mode and wing. The game never
// emits two death events without a resurrection in between, so the overwrite
// is kept as-is; see the double-killed test.
func (c *Commander) Killed() {
	c.previousMode = c.gameMode
	c.previousWing = copySet(c.wing)
	c.gameMode = GameModeUnset
	c.wing = make(map[string]struct{})
}

// Resurrect restores the mode and wing snapshotted at combat loss and clears
// the snapshots. Without a prior Killed it restores unset/empty.
func (c *Commander) Resurrect() {
	c.gameMode = c.previousMode
	c.wing = copySet(c.previousWing)
	c.previousMode = GameModeUnset
	c.previousWing = make(map[string]struct{})
}

// LeaveWing clears the current wing
func (c *Commander) LeaveWing() {
	c.wing = make(map[string]struct{})
}

// JoinWing replaces the wing with the given members (full replace, not
// merge). An independent copy is stored.
func (c *Commander) JoinWing(others []string) {
	wing := make(map[string]struct{}, len(others))
	for _, other := range others {
		wing[other] = struct{}{}
	}
	c.wing = wing
}

// AddToWing inserts one member into the current wing
func (c *Commander) AddToWing(other string) {
	c.wing[other] = struct{}{}
}

// Wing returns a sorted copy of the current wing members
func (c *Commander) Wing() []string {
	return sortedMembers(c.wing)
}

// PreviousWing returns a sorted copy of the wing snapshotted at combat loss
func (c *Commander) PreviousWing() []string {
	return sortedMembers(c.previousWing)
}

// AddFriend records a persistent friendship, unrelated to wing membership
func (c *Commander) AddFriend(friend string) {
	c.friends[friend] = struct{}{}
}

// RemoveFriend removes a friendship
func (c *Commander) RemoveFriend(friend string) {
	delete(c.friends, friend)
}

// Friends returns a sorted copy of the friends set
func (c *Commander) Friends() []string {
	return sortedMembers(c.friends)
}

// Obsolescence-driven updates
//
// Journal events frequently re-announce values that have not changed; an
// update is applied (and the timestamp re-stamped) only when the observed
// value differs from or fills in the believed one. The gate is value
// equality, not timestamp ordering: a single authoritative event stream per
// commander is assumed.

// UpdateShipIfObsolete canonicalizes the observed ship and applies it when
// the believed ship is missing or different. Returns whether a change was
// applied. The event timestamp is parsed before any mutation; a malformed
// timestamp fails the update atomically.
func (c *Commander) UpdateShipIfObsolete(ship string, edTimestamp string) (bool, error) {
	canonical := Canonicalize(&ship)
	if c.ship != nil && *c.ship == canonical {
		return false, nil
	}

	if err := c.timestamp.FromJournalTimestamp(edTimestamp); err != nil {
		return false, err
	}
	c.ship = &canonical
	return true, nil
}

// UpdateStarSystemIfObsolete applies the observed star system when the
// believed one is missing or different
func (c *Commander) UpdateStarSystemIfObsolete(starSystem string, edTimestamp string) (bool, error) {
	if current, ok := c.location.StarSystem(); ok && current == starSystem {
		return false, nil
	}

	if err := c.timestamp.FromJournalTimestamp(edTimestamp); err != nil {
		return false, err
	}
	c.location.starSystem = &starSystem
	return true, nil
}

// UpdatePlaceIfObsolete applies the observed place when the believed one is
// missing or different
func (c *Commander) UpdatePlaceIfObsolete(place string, edTimestamp string) (bool, error) {
	if current, ok := c.location.Place(); ok && current == place {
		return false, nil
	}

	if err := c.timestamp.FromJournalTimestamp(edTimestamp); err != nil {
		return false, err
	}
	c.location.place = &place
	return true, nil
}

func (c *Commander) String() string {
	return fmt.Sprintf("Commander(%s)", c.name)
}

func copySet(set map[string]struct{}) map[string]struct{} {
	copied := make(map[string]struct{}, len(set))
	for member := range set {
		copied[member] = struct{}{}
	}
	return copied
}

func sortedMembers(set map[string]struct{}) []string {
	members := make([]string, 0, len(set))
	for member := range set {
		members = append(members, member)
	}
	sort.Strings(members)
	return members
}

package commander

import (
	"fmt"
	"strings"
)

// Security classification tokens announced by the galaxy map for systems
// without effective law enforcement. The lower-case 'l' in the anarchy
// token reproduces the game's own data verbatim.
const (
	SecurityAnarchy = "$GAlAXY_MAP_INFO_state_anarchy;"
	SecurityLawless = "$GALAXY_MAP_INFO_state_lawless;"
)

// Location is the believed whereabouts of a commander: a star system, an
// optional place within it (station, body, supercruise) and the system's
// security classification. Unset fields are nil, so an unknown system is
// distinguishable from a system literally named "".
//
// Location is mutated only through the owning Commander's update
// operations, never directly by callers.
type Location struct {
	starSystem *string
	place      *string
	security   *string
}

// NewLocation creates an empty Location with every field unset
func NewLocation() *Location {
	return &Location{}
}

// StarSystem returns the star system and whether it is known
func (l *Location) StarSystem() (string, bool) {
	if l.starSystem == nil {
		return "", false
	}
	return *l.starSystem, true
}

// Place returns the place within the system and whether it is known
func (l *Location) Place() (string, bool) {
	if l.place == nil {
		return "", false
	}
	return *l.place, true
}

// Security returns the security classification and whether it is known
func (l *Location) Security() (string, bool) {
	if l.security == nil {
		return "", false
	}
	return *l.security, true
}

// IsAnarchyOrLawless reports whether the system's security classification
// marks it as an anarchy or lawless system
func (l *Location) IsAnarchyOrLawless() bool {
	if l.security == nil {
		return false
	}
	return *l.security == SecurityAnarchy || *l.security == SecurityLawless
}

// PrettyPrint renders the location as "system" or "system, place". When the
// place label repeats the system name as a prefix (e.g. "Alpha Centauri
// Hutton Orbital"), only the remainder is appended.
func (l *Location) PrettyPrint() string {
	system := ""
	if l.starSystem != nil {
		system = *l.starSystem
	}

	if l.place == nil || *l.place == system {
		return system
	}

	if strings.HasPrefix(*l.place, system+" ") {
		return fmt.Sprintf("%s, %s", system, strings.TrimPrefix(*l.place, system+" "))
	}

	return fmt.Sprintf("%s, %s", system, *l.place)
}

func (l *Location) String() string {
	return fmt.Sprintf("Location(%s)", l.PrettyPrint())
}

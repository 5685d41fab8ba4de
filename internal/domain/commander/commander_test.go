package commander_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmdrwatch/cmdrwatch/internal/domain/commander"
)

const (
	ts1 = "2024-03-10T18:00:00Z"
	ts2 = "2024-03-10T18:05:00Z"
	ts3 = "2024-03-10T18:10:00Z"
)

func TestUpdateShipIfObsolete(t *testing.T) {
	cmdr := commander.NewCommander("Jameson")

	// First observation fills the missing ship and stamps the event time
	changed, err := cmdr.UpdateShipIfObsolete("sidewinder", ts1)
	require.NoError(t, err)
	assert.True(t, changed)

	ship, ok := cmdr.Ship()
	require.True(t, ok)
	assert.Equal(t, "Sidewinder", ship)
	assert.Equal(t, ts1, cmdr.Timestamp())

	// Re-announcing the same ship is a no-op and must not re-stamp
	changed, err = cmdr.UpdateShipIfObsolete("SIDEWINDER", ts2)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, ts1, cmdr.Timestamp())

	// A different ship is applied and advances the timestamp
	changed, err = cmdr.UpdateShipIfObsolete("python", ts3)
	require.NoError(t, err)
	assert.True(t, changed)

	ship, _ = cmdr.Ship()
	assert.Equal(t, "Python", ship)
	assert.Equal(t, ts3, cmdr.Timestamp())
}

func TestUpdateStarSystemAndPlaceIfObsolete(t *testing.T) {
	cmdr := commander.NewCommander("Jameson")

	changed, err := cmdr.UpdateStarSystemIfObsolete("Lave", ts1)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = cmdr.UpdateStarSystemIfObsolete("Lave", ts2)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, ts1, cmdr.Timestamp())

	changed, err = cmdr.UpdatePlaceIfObsolete("Lave Station", ts2)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, ts2, cmdr.Timestamp())

	changed, err = cmdr.UpdatePlaceIfObsolete("Lave Station", ts3)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, ts2, cmdr.Timestamp())
}

func TestUpdateWithMalformedTimestampIsAtomic(t *testing.T) {
	cmdr := commander.NewCommander("Jameson")

	changed, err := cmdr.UpdateShipIfObsolete("anaconda", "not-a-timestamp")
	assert.Error(t, err)
	assert.False(t, changed)

	// No partial mutation: the ship stays unobserved
	_, ok := cmdr.Ship()
	assert.False(t, ok)

	changed, err = cmdr.UpdateStarSystemIfObsolete("Lave", "")
	assert.Error(t, err)
	assert.False(t, changed)
	_, ok = cmdr.StarSystem()
	assert.False(t, ok)
}

func TestKilledAndResurrectRoundTrip(t *testing.T) {
	cmdr := commander.NewCommander("Jameson")
	cmdr.SetGameMode(commander.GameModeOpen)
	cmdr.JoinWing([]string{"A", "B"})

	cmdr.Killed()
	assert.Equal(t, commander.GameModeUnset, cmdr.GameMode())
	assert.Empty(t, cmdr.Wing())
	assert.Equal(t, commander.GameModeOpen, cmdr.PreviousGameMode())
	assert.Equal(t, []string{"A", "B"}, cmdr.PreviousWing())

	cmdr.Resurrect()
	assert.Equal(t, commander.GameModeOpen, cmdr.GameMode())
	assert.Equal(t, []string{"A", "B"}, cmdr.Wing())
	assert.Equal(t, commander.GameModeUnset, cmdr.PreviousGameMode())
	assert.Empty(t, cmdr.PreviousWing())
}

// A second Killed before Resurrect overwrites the snapshots with the cleared
// values: the pre-death mode and wing are lost. Documented behavior.
func TestDoubleKilledLosesPreDeathState(t *testing.T) {
	cmdr := commander.NewCommander("Jameson")
	cmdr.SetGameMode(commander.GameModeOpen)
	cmdr.JoinWing([]string{"A"})

	cmdr.Killed()
	cmdr.Killed()
	cmdr.Resurrect()

	assert.Equal(t, commander.GameModeUnset, cmdr.GameMode())
	assert.Empty(t, cmdr.Wing())
}

func TestResurrectWithoutKilledIsSafe(t *testing.T) {
	cmdr := commander.NewCommander("Jameson")
	cmdr.Resurrect()

	assert.Equal(t, commander.GameModeUnset, cmdr.GameMode())
	assert.Empty(t, cmdr.Wing())
}

func TestInception(t *testing.T) {
	cmdr := commander.NewCommander("Jameson")
	cmdr.SetGameMode(commander.GameModeGroup)
	cmdr.JoinWing([]string{"A", "B"})

	cmdr.Inception()

	assert.True(t, cmdr.FromBirth())
	assert.Empty(t, cmdr.Wing())
	assert.Empty(t, cmdr.PreviousWing())
	assert.Equal(t, commander.GameModeUnset, cmdr.PreviousGameMode())
	// Inception resets group state, not the current mode
	assert.Equal(t, commander.GameModeGroup, cmdr.GameMode())
}

func TestWingMembership(t *testing.T) {
	cmdr := commander.NewCommander("Jameson")

	others := []string{"A", "B"}
	cmdr.JoinWing(others)

	// The stored wing is an independent copy of the caller's slice
	others[0] = "Z"
	assert.Equal(t, []string{"A", "B"}, cmdr.Wing())

	// Reading the wing never exposes internal state
	wing := cmdr.Wing()
	wing[0] = "Z"
	assert.Equal(t, []string{"A", "B"}, cmdr.Wing())

	cmdr.AddToWing("C")
	assert.Equal(t, []string{"A", "B", "C"}, cmdr.Wing())

	cmdr.LeaveWing()
	assert.Empty(t, cmdr.Wing())
}

func TestIsFriendOrInWing(t *testing.T) {
	cmdr := commander.NewCommander("Jameson")
	cmdr.AddFriend("Friendly")
	cmdr.AddToWing("Wingmate")

	assert.True(t, cmdr.IsFriendOrInWing("Friendly"))
	assert.True(t, cmdr.IsFriendOrInWing("Wingmate"))
	assert.False(t, cmdr.IsFriendOrInWing("Stranger"))

	cmdr.RemoveFriend("Friendly")
	assert.False(t, cmdr.IsFriendOrInWing("Friendly"))
}

func TestHasPartialStatus(t *testing.T) {
	cmdr := commander.NewCommander("Jameson")
	assert.True(t, cmdr.HasPartialStatus())

	_, err := cmdr.UpdateShipIfObsolete("eagle", ts1)
	require.NoError(t, err)
	assert.True(t, cmdr.HasPartialStatus())

	_, err = cmdr.UpdateStarSystemIfObsolete("Eravate", ts1)
	require.NoError(t, err)
	assert.True(t, cmdr.HasPartialStatus())

	_, err = cmdr.UpdatePlaceIfObsolete("Cleve Hub", ts1)
	require.NoError(t, err)
	assert.False(t, cmdr.HasPartialStatus())
}

func TestModePredicates(t *testing.T) {
	cmdr := commander.NewCommander("Jameson")
	assert.False(t, cmdr.InSoloOrPrivate())
	assert.False(t, cmdr.InOpen())

	cmdr.SetGameMode(commander.GameModeSolo)
	assert.True(t, cmdr.InSoloOrPrivate())
	assert.False(t, cmdr.InOpen())

	cmdr.SetGameMode(commander.GameModeGroup)
	assert.True(t, cmdr.InSoloOrPrivate())

	cmdr.SetGameMode(commander.GameModeOpen)
	assert.False(t, cmdr.InSoloOrPrivate())
	assert.True(t, cmdr.InOpen())
}

func TestSnapshotRoundTrip(t *testing.T) {
	cmdr := commander.NewCommander("Jameson")
	require.NoError(t, cmdr.SetTimestamp(ts1))
	cmdr.SetShip("cobramkiii")
	cmdr.SetStarSystem("Alpha Centauri")
	cmdr.SetPlace("Alpha Centauri Hutton Orbital")
	cmdr.SetLocationSecurity(commander.SecurityAnarchy)
	cmdr.SetGameMode(commander.GameModeOpen)
	cmdr.JoinWing([]string{"A", "B"})
	cmdr.AddFriend("Friendly")

	restored, err := commander.RestoreCommander(cmdr.Snapshot())
	require.NoError(t, err)

	assert.Equal(t, "Jameson", restored.Name())
	ship, ok := restored.Ship()
	require.True(t, ok)
	assert.Equal(t, "Cobra Mk III", ship)
	assert.Equal(t, "Alpha Centauri, Hutton Orbital", restored.Location().PrettyPrint())
	assert.True(t, restored.InBadNeighborhood())
	assert.Equal(t, commander.GameModeOpen, restored.GameMode())
	assert.Equal(t, []string{"A", "B"}, restored.Wing())
	assert.Equal(t, []string{"Friendly"}, restored.Friends())
	assert.Equal(t, ts1, restored.Timestamp())
}

func TestDisplayPlace(t *testing.T) {
	cmdr := commander.NewCommander("Jameson")
	assert.Equal(t, "Unknown", cmdr.DisplayPlace())

	cmdr.SetPlace("Cleve Hub")
	assert.Equal(t, "Cleve Hub", cmdr.DisplayPlace())
}

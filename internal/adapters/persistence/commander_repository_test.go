package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmdrwatch/cmdrwatch/internal/adapters/persistence"
	"github.com/cmdrwatch/cmdrwatch/internal/domain/commander"
	"github.com/cmdrwatch/cmdrwatch/internal/domain/shared"
	"github.com/cmdrwatch/cmdrwatch/test/helpers"
)

func TestCommanderRepository_SaveAndFind(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCommanderRepository(db)

	cmdr := commander.NewCommander("Jameson")
	require.NoError(t, cmdr.SetTimestamp("2024-03-10T18:00:00Z"))
	cmdr.SetShip("cobramkiii")
	cmdr.SetStarSystem("Alpha Centauri")
	cmdr.SetPlace("Alpha Centauri Hutton Orbital")
	cmdr.SetLocationSecurity(commander.SecurityAnarchy)
	cmdr.SetGameMode(commander.GameModeOpen)
	cmdr.JoinWing([]string{"Artie", "Bounder"})
	cmdr.AddFriend("Friendly")

	// Act - Save
	err := repo.Save(context.Background(), cmdr)

	// Assert
	require.NoError(t, err)

	// Act - FindByName
	found, err := repo.FindByName(context.Background(), "Jameson")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Jameson", found.Name())

	ship, ok := found.Ship()
	require.True(t, ok)
	assert.Equal(t, "Cobra Mk III", ship)

	assert.Equal(t, "Alpha Centauri, Hutton Orbital", found.Location().PrettyPrint())
	assert.True(t, found.InBadNeighborhood())
	assert.Equal(t, commander.GameModeOpen, found.GameMode())
	assert.Equal(t, []string{"Artie", "Bounder"}, found.Wing())
	assert.Equal(t, []string{"Friendly"}, found.Friends())
	assert.Equal(t, "2024-03-10T18:00:00Z", found.Timestamp())
}

func TestCommanderRepository_SaveIsUpsert(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCommanderRepository(db)

	cmdr := commander.NewCommander("Jameson")
	require.NoError(t, repo.Save(context.Background(), cmdr))

	cmdr.SetShip("python")
	require.NoError(t, repo.Save(context.Background(), cmdr))

	found, err := repo.FindByName(context.Background(), "Jameson")
	require.NoError(t, err)

	ship, ok := found.Ship()
	require.True(t, ok)
	assert.Equal(t, "Python", ship)

	all, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCommanderRepository_PreservesUnsetFields(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCommanderRepository(db)

	cmdr := commander.NewCommander("Fresh")
	cmdr.Inception()
	require.NoError(t, repo.Save(context.Background(), cmdr))

	found, err := repo.FindByName(context.Background(), "Fresh")
	require.NoError(t, err)

	_, ok := found.Ship()
	assert.False(t, ok)
	_, ok = found.StarSystem()
	assert.False(t, ok)
	assert.True(t, found.HasPartialStatus())
	assert.True(t, found.FromBirth())
	assert.Equal(t, commander.GameModeUnset, found.GameMode())
}

func TestCommanderRepository_NotFound(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCommanderRepository(db)

	_, err := repo.FindByName(context.Background(), "Nobody")
	assert.Error(t, err)

	var cmdErr *shared.CommanderError
	assert.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, "Nobody", cmdErr.Commander)
}

func TestCommanderRepository_Delete(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCommanderRepository(db)

	require.NoError(t, repo.Save(context.Background(), commander.NewCommander("Jameson")))
	require.NoError(t, repo.Delete(context.Background(), "Jameson"))

	_, err := repo.FindByName(context.Background(), "Jameson")
	assert.Error(t, err)
}

package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmdrwatch/cmdrwatch/internal/application/tracking/queries"
	"github.com/cmdrwatch/cmdrwatch/internal/domain/commander"
	"github.com/cmdrwatch/cmdrwatch/test/helpers"
)

func TestGetStatus(t *testing.T) {
	repo := helpers.NewMockCommanderRepository()
	handler := queries.NewGetStatusHandler(repo)

	cmdr := commander.NewCommander("Jameson")
	require.NoError(t, cmdr.SetTimestamp("2024-03-10T18:00:00Z"))
	cmdr.SetShip("sidewinder")
	cmdr.SetStarSystem("Alpha Centauri")
	cmdr.SetPlace("Alpha Centauri Hutton Orbital")
	cmdr.SetGameMode(commander.GameModeOpen)
	cmdr.JoinWing([]string{"Artie"})
	require.NoError(t, repo.Save(context.Background(), cmdr))

	status, err := handler.Handle(context.Background(), &queries.GetStatusQuery{Name: "Jameson"})
	require.NoError(t, err)

	assert.Equal(t, "Jameson", status.Name)
	assert.Equal(t, "Sidewinder", status.Ship)
	assert.Equal(t, "Alpha Centauri, Hutton Orbital", status.Location)
	assert.Equal(t, "Open", status.GameMode)
	assert.True(t, status.InOpen)
	assert.False(t, status.PartialStatus)
	assert.Equal(t, []string{"Artie"}, status.Wing)
	assert.Equal(t, "2024-03-10T18:00:00Z", status.Timestamp)
	assert.Equal(t, int64(1710093600000), status.EpochMillis)
}

func TestGetStatus_UnknownShipAndPlace(t *testing.T) {
	repo := helpers.NewMockCommanderRepository()
	handler := queries.NewGetStatusHandler(repo)

	require.NoError(t, repo.Save(context.Background(), commander.NewCommander("Fresh")))

	status, err := handler.Handle(context.Background(), &queries.GetStatusQuery{Name: "Fresh"})
	require.NoError(t, err)

	assert.Equal(t, "Unknown", status.Ship)
	assert.Equal(t, "Unknown", status.Place)
	assert.True(t, status.PartialStatus)
}

func TestGetStatus_NotFound(t *testing.T) {
	handler := queries.NewGetStatusHandler(helpers.NewMockCommanderRepository())
	_, err := handler.Handle(context.Background(), &queries.GetStatusQuery{Name: "Nobody"})
	assert.Error(t, err)
}

package journal_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmdrwatch/cmdrwatch/internal/adapters/journal"
)

const sampleJournal = `{"timestamp":"2024-03-10T18:00:00Z","event":"LoadGame","Commander":"Jameson","Ship":"CobraMkIII","GameMode":"Open"}
{"timestamp":"2024-03-10T18:00:05Z","event":"Location","StarSystem":"Eravate","Body":"Cleve Hub","SystemSecurity":"$SYSTEM_SECURITY_high;","Docked":true,"StationName":"Cleve Hub"}

{"timestamp":"2024-03-10T18:12:00Z","event":"FSDJump","StarSystem":"Lave","SystemSecurity":"$GALAXY_MAP_INFO_state_lawless;"}
{"this line is truncated
{"timestamp":"2024-03-10T18:20:00Z","event":"WingJoin","Others":["Artie","Bounder"]}
`

func TestReadAll(t *testing.T) {
	events, parseFails, err := journal.ReadAll(strings.NewReader(sampleJournal))
	require.NoError(t, err)

	assert.Equal(t, 1, parseFails)
	require.Len(t, events, 4)

	assert.Equal(t, journal.EventLoadGame, events[0].Name)
	assert.Equal(t, "2024-03-10T18:00:00Z", events[0].Timestamp)
	assert.Equal(t, journal.EventLocation, events[1].Name)
	assert.Equal(t, journal.EventFSDJump, events[2].Name)
	assert.Equal(t, journal.EventWingJoin, events[3].Name)
}

func TestEventDecode(t *testing.T) {
	events, _, err := journal.ReadAll(strings.NewReader(sampleJournal))
	require.NoError(t, err)
	require.Len(t, events, 4)

	var loadGame journal.LoadGameEvent
	require.NoError(t, events[0].Decode(&loadGame))
	assert.Equal(t, "Jameson", loadGame.Commander)
	assert.Equal(t, "CobraMkIII", loadGame.Ship)
	assert.Equal(t, "Open", loadGame.GameMode)

	var location journal.LocationEvent
	require.NoError(t, events[1].Decode(&location))
	assert.Equal(t, "Eravate", location.StarSystem)
	assert.True(t, location.Docked)
	assert.Equal(t, "Cleve Hub", location.StationName)

	var wingJoin journal.WingJoinEvent
	require.NoError(t, events[3].Decode(&wingJoin))
	assert.Equal(t, []string{"Artie", "Bounder"}, wingJoin.Others)
}

func TestParseEventRejectsMissingName(t *testing.T) {
	_, err := journal.ParseEvent([]byte(`{"timestamp":"2024-03-10T18:00:00Z"}`))
	assert.Error(t, err)

	_, err = journal.ParseEvent([]byte(`not json`))
	assert.Error(t, err)
}

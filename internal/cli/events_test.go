package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/equatix/internal/factory"
	"github.com/mcoot/equatix/internal/testutil"
)

func TestEventLoggerRecordsTurns(t *testing.T) {
	recorder, logger := testutil.NewLogRecorder()
	app := factory.NewTestApp()
	app.GameController.Subscribe(eventLogger(logger))
	_, err := app.NewGame(seatsFor([]string{"Ada", "Grace"}, false, ""))
	require.NoError(t, err)
	session := NewSession(app.App, NewOutput(OutputText, false, &bytes.Buffer{}, &bytes.Buffer{}))

	// P1 holds "=0000001"
	require.NoError(t, session.Execute("place 8 7 0"))
	require.NoError(t, session.Execute("place 8 8 ="))
	require.NoError(t, session.Execute("place 8 9 1"))
	require.Error(t, session.Execute("validate"))
	require.NoError(t, session.Execute("undo"))
	require.NoError(t, session.Execute("pass"))

	var events []string
	for _, entry := range recorder.Entries() {
		assert.Equal(t, "engine event", entry["msg"])
		assert.Equal(t, "cli-events", entry["component"])
		events = append(events, entry["event"].(string))
	}
	assert.Equal(t, []string{
		"game_started",
		"tile_placed", "tile_placed", "tile_placed",
		"turn_rejected",
		"turn_undone",
		"turn_passed",
	}, events)

	entries := recorder.Entries()
	assert.InDelta(t, 8, entries[1]["row"], 0)
	assert.InDelta(t, 7, entries[1]["col"], 0)
	assert.Equal(t, "0", entries[1]["tile"])
	assert.Equal(t, "equation_false", entries[4]["kind"])
	assert.Equal(t, "P1", entries[4]["player"])
	assert.InDelta(t, 3, entries[5]["returned"], 0)
}

func TestVerboseLogsEngineEvents(t *testing.T) {
	_, stderr, err := executeRoot(t, "validate\npass\n",
		"--verbose", "--color=false", "--seed", "5", "replay", "--keep-going", "-")
	require.NoError(t, err)

	assert.Contains(t, stderr, `msg="engine event"`)
	assert.Contains(t, stderr, "event=turn_rejected")
	assert.Contains(t, stderr, "kind=empty_turn")
	assert.Contains(t, stderr, "event=turn_passed")
}

func TestEngineEventsHiddenWithoutVerbose(t *testing.T) {
	_, stderr, err := executeRoot(t, "pass\n", "--color=false", "--seed", "5", "replay", "-")
	require.NoError(t, err)

	assert.NotContains(t, stderr, "engine event")
}

package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/lifegame/internal/testutil"
)

func TestEventLog(t *testing.T) {
	logger, logs := testutil.CaptureLogger()

	Event{Type: EventPlayerCreated, PlayerID: "p1", Payload: PlayerCreatedPayload{Username: "alice"}}.Log(logger)
	Event{Type: EventActivityDone, PlayerID: "p1", Payload: ActivityDonePayload{Activity: ActivitySleep, TimeOfDay: 8}}.Log(logger)
	Event{Type: EventAgedUp, PlayerID: "p1", Payload: AgedUpPayload{NewAge: 26, Cause: ActivitySleep}}.Log(logger)
	Event{Type: EventBonusAwarded, PlayerID: "p1", Payload: BonusAwardedPayload{Skill: SkillCooking}}.Log(logger)

	assert.Equal(t, []string{"player created", "activity done", "player aged up", "bonus awarded"}, logs.Messages())

	entries := logs.Entries()
	require.Len(t, entries, 4)
	assert.Equal(t, "p1", entries[0]["player_id"])
	assert.Equal(t, "alice", entries[0]["username"])
	assert.Equal(t, "SLEEP", entries[1]["activity"])
	assert.EqualValues(t, 8, entries[1]["time_of_day"])
	assert.EqualValues(t, 26, entries[2]["age"])
	assert.Equal(t, "SLEEP", entries[2]["cause"])
	assert.Equal(t, "cooking_level", entries[3]["skill"])
}

func TestEventJSON(t *testing.T) {
	at := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	data, err := json.Marshal(Event{
		Type:      EventAgedUp,
		Timestamp: at,
		PlayerID:  "p1",
		Payload:   AgedUpPayload{NewAge: 26, Cause: ActivityGoToSchool},
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": "aged_up",
		"timestamp": "2024-01-15T10:00:00Z",
		"player_id": "p1",
		"payload": {"new_age": 26, "cause": "GO_TO_SCHOOL"}
	}`, string(data))
}

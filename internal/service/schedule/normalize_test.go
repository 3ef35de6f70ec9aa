package schedule

import (
	"encoding/json"
	"testing"

	"github.com/hvacwidget/scheduler-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_LegacySingleSchedule(t *testing.T) {
	t.Parallel()
	legacy := `{
		"event_name": "Morning",
		"schedule_type": "thermostat",
		"repeat_frequency": "daily",
		"settings": {"system_mode": "Cool", "cool_setpoint": "74"}
	}`

	got, err := normalize(json.RawMessage(legacy))
	require.NoError(t, err)

	var doc struct {
		Schedules []map[string]any  `json:"schedules"`
		Metadata  schedule.Metadata `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(got, &doc))
	require.Len(t, doc.Schedules, 1)
	assert.Equal(t, schedule.LegacyScheduleID, doc.Schedules[0]["id"])
	assert.Equal(t, "Morning", doc.Schedules[0]["event_name"])
	assert.Equal(t, schedule.MetadataVersion, doc.Metadata.Version)
	assert.Equal(t, schedule.MetadataTimestamp, doc.Metadata.CreatedAt)
	assert.Equal(t, schedule.MetadataTimestamp, doc.Metadata.UpdatedAt)
}

func TestNormalize_LegacyOverwritesExistingID(t *testing.T) {
	t.Parallel()
	got, err := normalize(json.RawMessage(`{"id": "custom-7", "event_name": "Evening"}`))
	require.NoError(t, err)

	var doc struct {
		Schedules []map[string]any `json:"schedules"`
	}
	require.NoError(t, json.Unmarshal(got, &doc))
	require.Len(t, doc.Schedules, 1)
	assert.Equal(t, schedule.LegacyScheduleID, doc.Schedules[0]["id"])
}

func TestNormalize_LegacyPreservesUnknownFields(t *testing.T) {
	t.Parallel()
	legacy := `{"event_name": "Morning", "vendor_extension": {"zones": [1, 2]}}`

	got, err := normalize(json.RawMessage(legacy))
	require.NoError(t, err)

	var doc struct {
		Schedules []json.RawMessage `json:"schedules"`
	}
	require.NoError(t, json.Unmarshal(got, &doc))
	require.Len(t, doc.Schedules, 1)
	assert.JSONEq(t,
		`{"id": "1", "event_name": "Morning", "vendor_extension": {"zones": [1, 2]}}`,
		string(doc.Schedules[0]))
}

func TestNormalize_CurrentShapeIsIdentity(t *testing.T) {
	t.Parallel()
	cases := []string{
		`{"schedules": [], "metadata": {}}`,
		`{"schedules": [{"id": "a", "event_name": "X"}], "metadata": {"version": "1.0"}}`,
		// An envelope that also carries event_name at the top level still
		// counts as current shape; the schedules key wins.
		`{"schedules": [], "event_name": "stray", "metadata": {}}`,
	}
	for _, c := range cases {
		got, err := normalize(json.RawMessage(c))
		require.NoError(t, err, "input: %s", c)
		assert.Equal(t, c, string(got), "input: %s", c)
	}
}

func TestNormalize_UnrecognizedShape(t *testing.T) {
	t.Parallel()
	cases := []string{
		`{}`,
		`{"foo": "bar"}`,
		`[1, 2, 3]`,
		`"just a string"`,
		`42`,
		`null`,
	}
	for _, c := range cases {
		_, err := normalize(json.RawMessage(c))
		assert.ErrorIs(t, err, schedule.ErrUnrecognizedShape, "input: %s", c)
	}
}

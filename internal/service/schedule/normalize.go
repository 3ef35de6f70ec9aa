package schedule

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/hvacwidget/scheduler-backend-go/internal/domain/schedule"
)

// normalize upgrades a legacy single-schedule document into the current
// multi-schedule envelope. Already-shaped documents pass through
// unchanged; anything that is neither shape is rejected. The upgrade is
// one-way and entries inside an already-shaped document are left alone.
func normalize(raw json.RawMessage) (json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		// Not a JSON object, so neither the envelope nor a legacy entry.
		return nil, schedule.ErrUnrecognizedShape
	}

	if _, ok := fields["schedules"]; ok {
		return raw, nil
	}

	if _, ok := fields["event_name"]; !ok {
		return nil, schedule.ErrUnrecognizedShape
	}

	// Legacy single-schedule document. Stamp the fixed id (overwriting any
	// id already present) and wrap it in the current envelope. Working on
	// raw fields keeps unknown keys on the entry intact.
	fields["id"] = json.RawMessage(strconv.Quote(schedule.LegacyScheduleID))
	entry, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild legacy schedule entry: %w", err)
	}

	doc, err := json.Marshal(map[string]any{
		"schedules": []json.RawMessage{entry},
		"metadata": schedule.Metadata{
			Version:   schedule.MetadataVersion,
			CreatedAt: schedule.MetadataTimestamp,
			UpdatedAt: schedule.MetadataTimestamp,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build schedule envelope: %w", err)
	}
	return doc, nil
}

package schedule

import (
	"context"
	"encoding/json"
)

type ScheduleService interface {
	// GetAll returns the persisted document, upgraded to the current
	// multi-schedule envelope if the file still holds the legacy
	// single-schedule shape. The upgrade is not written back.
	GetAll(ctx context.Context) (json.RawMessage, error)

	// ReplaceAll persists doc verbatim, replacing the previous content.
	// No normalization, validation or merge is performed.
	ReplaceAll(ctx context.Context, doc json.RawMessage) error
}

package device

import (
	"context"
	"encoding/json"
)

type ConfigService interface {
	// Get returns the device configuration file content verbatim, or the
	// hardcoded default when the file does not exist.
	Get(ctx context.Context) (json.RawMessage, error)
}

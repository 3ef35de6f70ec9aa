package device

import (
	"context"
	"encoding/json"
)

// ConfigRepository reads the device configuration file. The file is
// read-only from this service's perspective.
type ConfigRepository interface {
	Get(ctx context.Context) (json.RawMessage, error)
}

package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hvacwidget/scheduler-backend-go/internal/domain/device"
)

// DeviceConfigStore reads the device configuration file. Unlike the
// schedule store it never writes: a missing file is reported as
// device.ErrConfigNotFound and the fallback stays in memory.
type DeviceConfigStore struct {
	path string
}

func NewDeviceConfigStore(path string) *DeviceConfigStore {
	return &DeviceConfigStore{path: path}
}

// Get implements device.ConfigRepository.
func (s *DeviceConfigStore) Get(ctx context.Context) (json.RawMessage, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, device.ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to read device config file: %w", err)
	}

	if !json.Valid(raw) {
		return nil, fmt.Errorf("%w: %s", device.ErrMalformedConfig, s.path)
	}
	return json.RawMessage(raw), nil
}

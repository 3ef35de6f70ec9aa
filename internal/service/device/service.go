package device

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hvacwidget/scheduler-backend-go/internal/domain/device"
)

type configServiceImpl struct {
	repo   device.ConfigRepository
	logger *slog.Logger
}

func NewConfigService(repo device.ConfigRepository, logger *slog.Logger) device.ConfigService {
	return &configServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

// Get implements device.ConfigService. A missing config file falls back
// to the hardcoded default without creating the file.
func (s *configServiceImpl) Get(ctx context.Context) (json.RawMessage, error) {
	raw, err := s.repo.Get(ctx)
	if err == nil {
		return raw, nil
	}

	if errors.Is(err, device.ErrConfigNotFound) {
		doc, err := json.Marshal(device.DefaultConfig())
		if err != nil {
			return nil, fmt.Errorf("failed to serialize default device config: %w", err)
		}
		return doc, nil
	}

	s.logger.ErrorContext(ctx, "failed to read device config", slog.Any("error", err))
	return nil, err
}

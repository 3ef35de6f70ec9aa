package schedule

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hvacwidget/scheduler-backend-go/internal/domain/schedule"
)

type scheduleServiceImpl struct {
	repo   schedule.DocumentRepository
	logger *slog.Logger
}

func NewScheduleService(repo schedule.DocumentRepository, logger *slog.Logger) schedule.ScheduleService {
	return &scheduleServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

// GetAll implements schedule.ScheduleService.
func (s *scheduleServiceImpl) GetAll(ctx context.Context) (json.RawMessage, error) {
	raw, err := s.repo.Load(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load schedules", slog.Any("error", err))
		return nil, err
	}

	doc, err := normalize(raw)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to normalize schedule document", slog.Any("error", err))
		return nil, err
	}
	return doc, nil
}

// ReplaceAll implements schedule.ScheduleService.
func (s *scheduleServiceImpl) ReplaceAll(ctx context.Context, doc json.RawMessage) error {
	if err := s.repo.Save(ctx, doc); err != nil {
		s.logger.ErrorContext(ctx, "failed to save schedules", slog.Any("error", err))
		return err
	}
	return nil
}

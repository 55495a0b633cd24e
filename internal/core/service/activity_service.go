package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/inkwell/blog-api/internal/core/domain"
	"github.com/inkwell/blog-api/internal/core/ports"
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns an ActivityService that persists events to the
// activity log.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

// Record persists a single dequeued event.
func (s *activityService) Record(ctx context.Context, event domain.ActivityEvent) error {
	if err := s.repo.Insert(ctx, event); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}

	s.log.Debug().
		Str("kind", string(event.Kind)).
		Str("post_id", event.PostID).
		Msg("activity recorded")
	return nil
}

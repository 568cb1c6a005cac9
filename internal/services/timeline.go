package services

import (
	"context"

	"github.com/heritagehub/apiserver/types"
)

// TimelineRepository defines persistence operations for timeline events.
type TimelineRepository interface {
	ListByMonument(ctx context.Context, monumentID int) ([]types.TimelineEvent, error)
	Create(ctx context.Context, event types.TimelineEvent) (types.TimelineEvent, error)
}

// TimelineService encapsulates timeline use-cases.
type TimelineService struct {
	repo TimelineRepository
}

func NewTimelineService(repo TimelineRepository) *TimelineService {
	return &TimelineService{repo: repo}
}

func (s *TimelineService) ListByMonument(ctx context.Context, monumentID int) ([]types.TimelineEvent, error) {
	return s.repo.ListByMonument(ctx, monumentID)
}

func (s *TimelineService) Create(ctx context.Context, event types.TimelineEvent) (types.TimelineEvent, error) {
	return s.repo.Create(ctx, event)
}

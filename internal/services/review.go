package services

import (
	"context"

	"github.com/heritagehub/apiserver/types"
)

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	ListByMonument(ctx context.Context, monumentID int) ([]types.Review, error)
	Create(ctx context.Context, review types.Review) (types.Review, error)
}

// ReviewService encapsulates review use-cases.
type ReviewService struct {
	repo ReviewRepository
}

func NewReviewService(repo ReviewRepository) *ReviewService {
	return &ReviewService{repo: repo}
}

func (s *ReviewService) ListByMonument(ctx context.Context, monumentID int) ([]types.Review, error) {
	return s.repo.ListByMonument(ctx, monumentID)
}

func (s *ReviewService) Create(ctx context.Context, review types.Review) (types.Review, error) {
	return s.repo.Create(ctx, review)
}

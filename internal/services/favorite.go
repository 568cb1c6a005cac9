package services

import (
	"context"

	"github.com/heritagehub/apiserver/types"
)

// FavoriteRepository defines persistence operations for favorites.
type FavoriteRepository interface {
	Toggle(ctx context.Context, userID, monumentID int) (added bool, err error)
	ListByUser(ctx context.Context, userID int) ([]types.Monument, error)
}

// FavoriteService encapsulates favorite use-cases.
type FavoriteService struct {
	repo FavoriteRepository
}

func NewFavoriteService(repo FavoriteRepository) *FavoriteService {
	return &FavoriteService{repo: repo}
}

// Toggle flips the favorite pair and reports "added" or "removed".
func (s *FavoriteService) Toggle(ctx context.Context, userID, monumentID int) (string, error) {
	added, err := s.repo.Toggle(ctx, userID, monumentID)
	if err != nil {
		return "", err
	}
	if added {
		return "added", nil
	}
	return "removed", nil
}

func (s *FavoriteService) ListByUser(ctx context.Context, userID int) ([]types.Monument, error) {
	return s.repo.ListByUser(ctx, userID)
}

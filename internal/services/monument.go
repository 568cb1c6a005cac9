package services

import (
	"context"

	"github.com/heritagehub/apiserver/types"
)

// MonumentRepository defines persistence operations for monuments.
type MonumentRepository interface {
	List(ctx context.Context) ([]types.Monument, error)
	Get(ctx context.Context, id int) (types.Monument, error)
	Create(ctx context.Context, monument types.Monument) (types.Monument, error)
	Update(ctx context.Context, monument types.Monument) (types.Monument, error)
	Delete(ctx context.Context, id int) error
}

// MonumentService encapsulates monument use-cases.
type MonumentService struct {
	repo MonumentRepository
}

func NewMonumentService(repo MonumentRepository) *MonumentService {
	return &MonumentService{repo: repo}
}

func (s *MonumentService) List(ctx context.Context) ([]types.Monument, error) {
	return s.repo.List(ctx)
}

func (s *MonumentService) Get(ctx context.Context, id int) (types.Monument, error) {
	return s.repo.Get(ctx, id)
}

func (s *MonumentService) Create(ctx context.Context, monument types.Monument) (types.Monument, error) {
	if monument.Category == "" {
		monument.Category = types.DefaultMonumentCategory
	}
	if monument.State == "" {
		monument.State = types.DefaultMonumentState
	}
	if monument.Gallery == nil {
		monument.Gallery = make([]string, 0)
	}
	return s.repo.Create(ctx, monument)
}

func (s *MonumentService) Update(ctx context.Context, monument types.Monument) (types.Monument, error) {
	if monument.Gallery == nil {
		monument.Gallery = make([]string, 0)
	}
	return s.repo.Update(ctx, monument)
}

func (s *MonumentService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

package services

import (
	"context"

	"github.com/heritagehub/apiserver/types"
)

// ArticleRepository defines persistence operations for articles.
type ArticleRepository interface {
	List(ctx context.Context) ([]types.Article, error)
	Create(ctx context.Context, article types.Article) (types.Article, error)
}

// ArticleService encapsulates article use-cases.
type ArticleService struct {
	repo ArticleRepository
}

func NewArticleService(repo ArticleRepository) *ArticleService {
	return &ArticleService{repo: repo}
}

func (s *ArticleService) List(ctx context.Context) ([]types.Article, error) {
	return s.repo.List(ctx)
}

func (s *ArticleService) Create(ctx context.Context, article types.Article) (types.Article, error) {
	return s.repo.Create(ctx, article)
}

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/heritagehub/apiserver/types"
)

// ArticleRepository handles persistence for articles.
type ArticleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// List returns all articles with the author's username attached,
// most recent first.
func (r *ArticleRepository) List(ctx context.Context) ([]types.Article, error) {
	const query = `
		SELECT articles.id, articles.title, articles.content, articles.image_url,
		       articles.author_id, articles.created_at, users.username AS author_name
		FROM articles
		JOIN users ON articles.author_id = users.id
		ORDER BY articles.created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := make([]types.Article, 0)
	for rows.Next() {
		var article types.Article
		if err := rows.Scan(
			&article.ID,
			&article.Title,
			&article.Content,
			&article.ImageURL,
			&article.AuthorID,
			&article.CreatedAt,
			&article.AuthorName,
		); err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

func (r *ArticleRepository) Create(ctx context.Context, article types.Article) (types.Article, error) {
	article.CreatedAt = time.Now()

	const query = `
		INSERT INTO articles (title, content, image_url, author_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		article.Title,
		article.Content,
		article.ImageURL,
		article.AuthorID,
		article.CreatedAt,
	).Scan(&article.ID); err != nil {
		return types.Article{}, err
	}
	return article, nil
}

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/heritagehub/apiserver/types"
)

// ReviewRepository handles persistence for reviews.
type ReviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// ListByMonument returns a monument's reviews with the reviewer's
// username attached, most recent first.
func (r *ReviewRepository) ListByMonument(ctx context.Context, monumentID int) ([]types.Review, error) {
	const query = `
		SELECT reviews.id, reviews.monument_id, reviews.user_id, reviews.rating,
		       reviews.comment, reviews.created_at, users.username
		FROM reviews
		JOIN users ON reviews.user_id = users.id
		WHERE reviews.monument_id = $1
		ORDER BY reviews.created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, monumentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]types.Review, 0)
	for rows.Next() {
		var review types.Review
		if err := rows.Scan(
			&review.ID,
			&review.MonumentID,
			&review.UserID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
			&review.Username,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

func (r *ReviewRepository) Create(ctx context.Context, review types.Review) (types.Review, error) {
	review.CreatedAt = time.Now()

	const query = `
		INSERT INTO reviews (monument_id, user_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		review.MonumentID,
		review.UserID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
	).Scan(&review.ID); err != nil {
		return types.Review{}, err
	}
	return review, nil
}

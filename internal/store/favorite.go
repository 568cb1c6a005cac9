package store

import (
	"context"
	"database/sql"

	"github.com/heritagehub/apiserver/types"
)

// FavoriteRepository handles persistence for favorites.
type FavoriteRepository struct {
	db *sql.DB
}

func NewFavoriteRepository(db *sql.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Toggle flips the favorite state for the (user, monument) pair and
// reports whether the pair is now present.
//
// Rather than check-then-act, it issues a conditional delete first and
// only inserts when nothing was deleted. Each statement is atomic, and
// ON CONFLICT DO NOTHING absorbs the remaining insert/insert race, so
// duplicate rows cannot occur.
func (r *FavoriteRepository) Toggle(ctx context.Context, userID, monumentID int) (added bool, err error) {
	const deleteQuery = `DELETE FROM favorites WHERE user_id = $1 AND monument_id = $2`
	result, err := r.db.ExecContext(ctx, deleteQuery, userID, monumentID)
	if err != nil {
		return false, err
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if deleted > 0 {
		return false, nil
	}

	const insertQuery = `
		INSERT INTO favorites (user_id, monument_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, monument_id) DO NOTHING`
	if _, err := r.db.ExecContext(ctx, insertQuery, userID, monumentID); err != nil {
		return false, err
	}
	return true, nil
}

// ListByUser returns the full monument rows a user has favorited.
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID int) ([]types.Monument, error) {
	const query = `
		SELECT monuments.id, monuments.name, monuments.description, monuments.image_url,
		       monuments.pano_image_url, monuments.latitude, monuments.longitude,
		       monuments.category, monuments.state
		FROM favorites
		JOIN monuments ON favorites.monument_id = monuments.id
		WHERE favorites.user_id = $1`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	monuments := make([]types.Monument, 0)
	for rows.Next() {
		var monument types.Monument
		if err := scanMonument(rows, &monument); err != nil {
			return nil, err
		}
		monuments = append(monuments, monument)
	}
	return monuments, rows.Err()
}

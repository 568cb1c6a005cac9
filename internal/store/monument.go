package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/heritagehub/apiserver/types"
)

// MonumentRepository handles persistence for monuments and their galleries.
type MonumentRepository struct {
	db *sql.DB
}

func NewMonumentRepository(db *sql.DB) *MonumentRepository {
	return &MonumentRepository{db: db}
}

func (r *MonumentRepository) List(ctx context.Context) ([]types.Monument, error) {
	const query = `
		SELECT id, name, description, image_url, pano_image_url, latitude, longitude, category, state
		FROM monuments
		ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
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

// Get returns a monument with its gallery image URLs attached.
func (r *MonumentRepository) Get(ctx context.Context, id int) (types.Monument, error) {
	const query = `
		SELECT id, name, description, image_url, pano_image_url, latitude, longitude, category, state
		FROM monuments
		WHERE id = $1`
	var monument types.Monument
	row := r.db.QueryRowContext(ctx, query, id)
	if err := scanMonument(row, &monument); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Monument{}, ErrNotFound
		}
		return types.Monument{}, err
	}

	const galleryQuery = `SELECT image_url FROM monument_images WHERE monument_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, galleryQuery, id)
	if err != nil {
		return types.Monument{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return types.Monument{}, err
		}
		monument.Gallery = append(monument.Gallery, url)
	}
	return monument, rows.Err()
}

// Create inserts a monument and its gallery image rows in one
// transaction, so a failed gallery insert leaves no partial monument.
func (r *MonumentRepository) Create(ctx context.Context, monument types.Monument) (types.Monument, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return types.Monument{}, err
	}
	defer tx.Rollback()

	const query = `
		INSERT INTO monuments (name, description, image_url, pano_image_url, latitude, longitude, category, state)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	if err := tx.QueryRowContext(
		ctx,
		query,
		monument.Name,
		monument.Description,
		monument.ImageURL,
		monument.PanoImageURL,
		monument.Latitude,
		monument.Longitude,
		monument.Category,
		monument.State,
	).Scan(&monument.ID); err != nil {
		return types.Monument{}, err
	}

	const imageQuery = `INSERT INTO monument_images (monument_id, image_url) VALUES ($1, $2)`
	for _, url := range monument.Gallery {
		if _, err := tx.ExecContext(ctx, imageQuery, monument.ID, url); err != nil {
			return types.Monument{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return types.Monument{}, err
	}
	return monument, nil
}

func (r *MonumentRepository) Update(ctx context.Context, monument types.Monument) (types.Monument, error) {
	const query = `
		UPDATE monuments
		SET name = $1,
			description = $2,
			image_url = $3,
			pano_image_url = $4,
			latitude = $5,
			longitude = $6,
			category = $7,
			state = $8
		WHERE id = $9`
	result, err := r.db.ExecContext(
		ctx,
		query,
		monument.Name,
		monument.Description,
		monument.ImageURL,
		monument.PanoImageURL,
		monument.Latitude,
		monument.Longitude,
		monument.Category,
		monument.State,
		monument.ID,
	)
	if err != nil {
		return types.Monument{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return types.Monument{}, err
	}
	if affected == 0 {
		return types.Monument{}, ErrNotFound
	}
	return monument, nil
}

// Delete removes a monument. Images, reviews, timeline events and tours
// cascade in the schema.
func (r *MonumentRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM monuments WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMonument(row rowScanner, monument *types.Monument) error {
	// Clients expect gallery as [] rather than null when empty.
	monument.Gallery = make([]string, 0)
	return row.Scan(
		&monument.ID,
		&monument.Name,
		&monument.Description,
		&monument.ImageURL,
		&monument.PanoImageURL,
		&monument.Latitude,
		&monument.Longitude,
		&monument.Category,
		&monument.State,
	)
}

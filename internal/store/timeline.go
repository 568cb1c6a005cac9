package store

import (
	"context"
	"database/sql"

	"github.com/heritagehub/apiserver/types"
)

// TimelineRepository handles persistence for timeline events.
type TimelineRepository struct {
	db *sql.DB
}

func NewTimelineRepository(db *sql.DB) *TimelineRepository {
	return &TimelineRepository{db: db}
}

// ListByMonument returns a monument's timeline, oldest event first.
func (r *TimelineRepository) ListByMonument(ctx context.Context, monumentID int) ([]types.TimelineEvent, error) {
	const query = `
		SELECT id, monument_id, event_year, event_title, event_description
		FROM timeline_events
		WHERE monument_id = $1
		ORDER BY event_year`
	rows, err := r.db.QueryContext(ctx, query, monumentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]types.TimelineEvent, 0)
	for rows.Next() {
		var event types.TimelineEvent
		if err := rows.Scan(
			&event.ID,
			&event.MonumentID,
			&event.EventYear,
			&event.EventTitle,
			&event.EventDescription,
		); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (r *TimelineRepository) Create(ctx context.Context, event types.TimelineEvent) (types.TimelineEvent, error) {
	const query = `
		INSERT INTO timeline_events (monument_id, event_year, event_title, event_description)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		event.MonumentID,
		event.EventYear,
		event.EventTitle,
		event.EventDescription,
	).Scan(&event.ID); err != nil {
		return types.TimelineEvent{}, err
	}
	return event, nil
}

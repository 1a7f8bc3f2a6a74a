package repo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"ngoportal/internal/domain"
	"ngoportal/internal/infra"
	"ngoportal/internal/sqlinline"
)

// EventRepositoryPG implements EventRepository using PostgreSQL.
type EventRepositoryPG struct {
	db infra.DB
}

// NewEventRepository creates a new event repo.
func NewEventRepository(db infra.DB) *EventRepositoryPG {
	return &EventRepositoryPG{db: db}
}

// ListUpcoming returns events dated today or later, soonest first. "Today" is
// the store's current date at query time; nothing is cached.
func (r *EventRepositoryPG) ListUpcoming(ctx context.Context) ([]domain.Event, error) {
	rows, err := r.db.Query(ctx, sqlinline.QSelectUpcomingEvents)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()
	return scanEvents(rows)
}

func scanEvents(rows pgx.Rows) ([]domain.Event, error) {
	var items []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.ID, &e.NgoID, &e.Name, &e.Date, &e.Location, &e.NgoName); err != nil {
			return nil, mapError(err)
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return items, nil
}

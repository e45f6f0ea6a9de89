package repository

import (
	"context"
	"fmt"

	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/model"
	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/repository/base"
)

type EventRepository struct {
	*base.Repository
}

func NewEventRepository(db base.Querier) *EventRepository {
	return &EventRepository{Repository: base.NewRepository(db)}
}

// List возвращает все события дня
func (r *EventRepository) List(ctx context.Context) ([]model.Event, error) {
	query := `
		SELECT id, name, date, time_start, time_end, transport_time_start, transport_time_end
		FROM events
		ORDER BY date NULLS LAST, time_start NULLS LAST, id
	`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		err := rows.Scan(
			&e.ID,
			&e.Name,
			&e.Date,
			&e.TimeStart,
			&e.TimeEnd,
			&e.TransportTimeStart,
			&e.TransportTimeEnd,
		)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}

	return events, nil
}

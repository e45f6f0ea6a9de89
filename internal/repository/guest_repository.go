package repository

import (
	"context"
	"fmt"

	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/model"
	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/repository/base"
)

type GuestRepository struct {
	*base.Repository
}

func NewGuestRepository(db base.Querier) *GuestRepository {
	return &GuestRepository{Repository: base.NewRepository(db)}
}

// List возвращает всех гостей
func (r *GuestRepository) List(ctx context.Context) ([]model.Guest, error) {
	query := `
		SELECT id, first_name, last_name, is_child, parent_guest_id, seating_preference, custom_table_id
		FROM guests
		ORDER BY last_name, first_name, id
	`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}
	defer rows.Close()

	var guests []model.Guest
	for rows.Next() {
		var g model.Guest
		err := rows.Scan(
			&g.ID,
			&g.FirstName,
			&g.LastName,
			&g.IsChild,
			&g.ParentGuestID,
			&g.SeatingPreference,
			&g.CustomTableID,
		)
		if err != nil {
			return nil, fmt.Errorf("scan guest: %w", err)
		}
		guests = append(guests, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate guests: %w", err)
	}

	return guests, nil
}

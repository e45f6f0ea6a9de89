package repository

import (
	"context"
	"fmt"

	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/model"
	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/repository/base"
)

type TableRepository struct {
	*base.Repository
}

func NewTableRepository(db base.Querier) *TableRepository {
	return &TableRepository{Repository: base.NewRepository(db)}
}

// List возвращает все столы
func (r *TableRepository) List(ctx context.Context) ([]model.Table, error) {
	query := `
		SELECT id, name, capacity, table_type, event_id, position_x, position_y
		FROM tables
		ORDER BY name, id
	`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var tables []model.Table
	for rows.Next() {
		var t model.Table
		err := rows.Scan(
			&t.ID,
			&t.Name,
			&t.Capacity,
			&t.TableType,
			&t.EventID,
			&t.PositionX,
			&t.PositionY,
		)
		if err != nil {
			return nil, fmt.Errorf("scan table: %w", err)
		}
		tables = append(tables, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tables: %w", err)
	}

	return tables, nil
}

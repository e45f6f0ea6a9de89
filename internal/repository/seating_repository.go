package repository

import (
	"context"
	"fmt"

	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/model"
	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/repository/base"
	"github.com/google/uuid"
)

type SeatingRepository struct {
	*base.Repository
}

func NewSeatingRepository(db base.Querier) *SeatingRepository {
	return &SeatingRepository{Repository: base.NewRepository(db)}
}

// Create создаёт прямое назначение гостя за стол
// Уникальность гостя не проверяется, дубликаты видны в рассадке
func (r *SeatingRepository) Create(ctx context.Context, assignment *model.SeatingAssignment) error {
	if assignment.ID == "" {
		assignment.ID = uuid.NewString()
	}

	query := `
		INSERT INTO seating_assignments (id, table_id, guest_id)
		VALUES ($1, $2, $3)
	`

	_, err := r.ExecAffected(ctx, query, assignment.ID, assignment.TableID, assignment.GuestID)
	if err != nil {
		return fmt.Errorf("create seating assignment: %w", err)
	}

	return nil
}

// GetByID получает назначение по ID
func (r *SeatingRepository) GetByID(ctx context.Context, id string) (*model.SeatingAssignment, error) {
	query := `
		SELECT id, table_id, guest_id
		FROM seating_assignments
		WHERE id = $1
	`

	var a model.SeatingAssignment
	err := r.QueryRow(ctx, query, id).Scan(&a.ID, &a.TableID, &a.GuestID)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get seating assignment by id: %w", err)
	}

	return &a, nil
}

// List возвращает все назначения
func (r *SeatingRepository) List(ctx context.Context) ([]model.SeatingAssignment, error) {
	query := `
		SELECT id, table_id, guest_id
		FROM seating_assignments
		ORDER BY created_at, id
	`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list seating assignments: %w", err)
	}
	defer rows.Close()

	var assignments []model.SeatingAssignment
	for rows.Next() {
		var a model.SeatingAssignment
		if err := rows.Scan(&a.ID, &a.TableID, &a.GuestID); err != nil {
			return nil, fmt.Errorf("scan seating assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate seating assignments: %w", err)
	}

	return assignments, nil
}

// Delete удаляет назначение
func (r *SeatingRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM seating_assignments WHERE id = $1`

	affected, err := r.ExecAffected(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete seating assignment: %w", err)
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SnapshotRepository читает все коллекции одним согласованным снимком
type SnapshotRepository struct {
	pool *pgxpool.Pool
}

func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{pool: pool}
}

// Load читает события, столы, гостей и назначения в одной read-only транзакции
func (r *SnapshotRepository) Load(ctx context.Context) (*model.Snapshot, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("begin snapshot transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	events, err := NewEventRepository(tx).List(ctx)
	if err != nil {
		return nil, err
	}

	tables, err := NewTableRepository(tx).List(ctx)
	if err != nil {
		return nil, err
	}

	guests, err := NewGuestRepository(tx).List(ctx)
	if err != nil {
		return nil, err
	}

	assignments, err := NewSeatingRepository(tx).List(ctx)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit snapshot transaction: %w", err)
	}

	return &model.Snapshot{
		Events:      events,
		Tables:      tables,
		Guests:      guests,
		Assignments: assignments,
	}, nil
}

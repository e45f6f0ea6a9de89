package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/clock"
	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/conflict"
	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/model"
	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/repository"
	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/seating"
	"go.uber.org/zap"
)

// SnapshotLoader источник снимка коллекций
type SnapshotLoader interface {
	Load(ctx context.Context) (*model.Snapshot, error)
}

// AssignmentStore запись прямых назначений
type AssignmentStore interface {
	Create(ctx context.Context, assignment *model.SeatingAssignment) error
	GetByID(ctx context.Context, id string) (*model.SeatingAssignment, error)
	Delete(ctx context.Context, id string) error
}

// ProgramItem событие программы дня вместе с эффективным окном
type ProgramItem struct {
	Event     model.Event
	Window    clock.Window
	Conflicts []model.Event
}

// DayProgram программа одного дня
type DayProgram struct {
	Date  time.Time
	Items []ProgramItem
}

// PlannerService пересчитывает конфликты и рассадку по свежему снимку на каждый запрос
type PlannerService struct {
	snapshots   SnapshotLoader
	assignments AssignmentStore
	detector    *conflict.Detector
	loc         *time.Location
	logger      *zap.Logger
}

func NewPlannerService(
	snapshots SnapshotLoader,
	assignments AssignmentStore,
	loc *time.Location,
	logger *zap.Logger,
) *PlannerService {
	if loc == nil {
		loc = time.Local
	}
	return &PlannerService{
		snapshots:   snapshots,
		assignments: assignments,
		detector:    conflict.NewDetector(conflict.WithLocation(loc)),
		loc:         loc,
		logger:      logger,
	}
}

func (s *PlannerService) load(ctx context.Context) (*model.Snapshot, error) {
	snapshot, err := s.snapshots.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return snapshot, nil
}

// Conflicts возвращает карту конфликтов eventID -> события
func (s *PlannerService) Conflicts(ctx context.Context) (map[string][]model.Event, error) {
	snapshot, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	conflicts := s.detector.AllConflicts(snapshot.Events)

	s.logger.Debug("Conflicts computed",
		zap.Int("events", len(snapshot.Events)),
		zap.Int("conflicting_events", len(conflicts)),
	)

	return conflicts, nil
}

// EventConflicts возвращает конфликты одного события
func (s *PlannerService) EventConflicts(ctx context.Context, eventID string) (*model.Event, []model.Event, error) {
	snapshot, err := s.load(ctx)
	if err != nil {
		return nil, nil, err
	}

	for _, e := range snapshot.Events {
		if e.ID == eventID {
			return &e, s.detector.FindConflicts(e, snapshot.Events), nil
		}
	}

	return nil, nil, ErrEventNotFound
}

// Seating возвращает рассадку; при непустом eventID - только по столам события и общим
func (s *PlannerService) Seating(ctx context.Context, eventID string) (*seating.Plan, error) {
	snapshot, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	resolver := seating.New(snapshot)

	var plan seating.Plan
	if eventID == "" {
		plan = resolver.Plan()
	} else {
		plan = resolver.PlanForEvent(eventID)
	}

	s.logger.Debug("Seating resolved",
		zap.String("event_id", eventID),
		zap.Int("tables", len(plan.Tables)),
		zap.Int("unassigned", len(plan.Unassigned)),
	)

	return &plan, nil
}

// TableSeating возвращает рассадку одного стола
func (s *PlannerService) TableSeating(ctx context.Context, tableID string) (*seating.TableSeating, error) {
	snapshot, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	ts, ok := seating.New(snapshot).Seating(tableID)
	if !ok {
		return nil, ErrTableNotFound
	}

	return &ts, nil
}

// Unassigned возвращает гостей без места
func (s *PlannerService) Unassigned(ctx context.Context) ([]model.Guest, error) {
	snapshot, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	return seating.New(snapshot).Unassigned(), nil
}

// DayProgram возвращает события дня, упорядоченные по началу эффективного окна
// События с неразборчивым временем в программу не попадают
func (s *PlannerService) DayProgram(ctx context.Context, date string) (*DayProgram, error) {
	day, ok := clock.ParseDate(date, s.loc)
	if !ok {
		return nil, ErrInvalidDate
	}

	snapshot, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	conflicts := s.detector.AllConflicts(snapshot.Events)

	program := &DayProgram{Date: day}
	for _, e := range snapshot.Events {
		if !e.HasDate() {
			continue
		}
		// Сравниваем разобранные даты, сырые строки могут отличаться пробелами
		if eventDay, ok := clock.ParseDate(*e.Date, s.loc); !ok || !eventDay.Equal(day) {
			continue
		}
		window, ok := s.detector.EffectiveWindow(e)
		if !ok {
			continue
		}
		program.Items = append(program.Items, ProgramItem{
			Event:     e,
			Window:    window,
			Conflicts: conflicts[e.ID],
		})
	}

	sort.SliceStable(program.Items, func(i, j int) bool {
		return program.Items[i].Window.Start.Before(program.Items[j].Window.Start)
	})

	return program, nil
}

// AssignGuest создаёт прямое назначение гостя за стол
// Повторное назначение не запрещается, но логируется
func (s *PlannerService) AssignGuest(ctx context.Context, tableID, guestID string) (*model.SeatingAssignment, error) {
	snapshot, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	resolver := seating.New(snapshot)

	table, ok := resolver.Table(tableID)
	if !ok {
		return nil, ErrTableNotFound
	}

	if !hasGuest(snapshot.Guests, guestID) {
		return nil, ErrGuestNotFound
	}

	for _, a := range snapshot.Assignments {
		if a.GuestID == guestID {
			s.logger.Warn("Guest already has a seating assignment",
				zap.String("guest_id", guestID),
				zap.String("existing_table_id", a.TableID),
				zap.String("new_table_id", tableID),
			)
			break
		}
	}

	assignment := &model.SeatingAssignment{
		TableID: tableID,
		GuestID: guestID,
	}

	err = s.assignments.Create(ctx, assignment)
	if err != nil {
		return nil, fmt.Errorf("create seating assignment: %w", err)
	}

	occupancy := resolver.Occupancy(tableID)
	occupancy.Direct++
	if occupancy.Direct > table.Capacity {
		s.logger.Warn("Table is over capacity",
			zap.String("table_id", tableID),
			zap.Int("direct", occupancy.Direct),
			zap.Int("capacity", table.Capacity),
		)
	}

	s.logger.Info("Guest assigned",
		zap.String("assignment_id", assignment.ID),
		zap.String("table_id", tableID),
		zap.String("guest_id", guestID),
	)

	return assignment, nil
}

// Unassign удаляет прямое назначение
func (s *PlannerService) Unassign(ctx context.Context, assignmentID string) error {
	assignment, err := s.assignments.GetByID(ctx, assignmentID)
	if err != nil {
		return fmt.Errorf("get seating assignment: %w", err)
	}

	if assignment == nil {
		return ErrAssignmentNotFound
	}

	err = s.assignments.Delete(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAssignmentNotFound
		}
		return fmt.Errorf("delete seating assignment: %w", err)
	}

	s.logger.Info("Guest unassigned",
		zap.String("assignment_id", assignmentID),
		zap.String("table_id", assignment.TableID),
		zap.String("guest_id", assignment.GuestID),
	)

	return nil
}

func hasGuest(guests []model.Guest, id string) bool {
	for _, g := range guests {
		if g.ID == id {
			return true
		}
	}
	return false
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/model"
	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeLoader struct {
	snapshot *model.Snapshot
	err      error
	calls    int
}

func (f *fakeLoader) Load(ctx context.Context) (*model.Snapshot, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.snapshot, nil
}

// fakeStore пишет прямо в снимок, как это сделала бы база
type fakeStore struct {
	snapshot  *model.Snapshot
	createErr error
	nextID    int
}

func (f *fakeStore) Create(ctx context.Context, a *model.SeatingAssignment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	a.ID = "sa-" + string(rune('0'+f.nextID))
	f.snapshot.Assignments = append(f.snapshot.Assignments, *a)
	return nil
}

func (f *fakeStore) GetByID(ctx context.Context, id string) (*model.SeatingAssignment, error) {
	for _, a := range f.snapshot.Assignments {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) Delete(ctx context.Context, id string) error {
	for i, a := range f.snapshot.Assignments {
		if a.ID == id {
			f.snapshot.Assignments = append(f.snapshot.Assignments[:i], f.snapshot.Assignments[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func strPtr(s string) *string {
	return &s
}

func weddingSnapshot() *model.Snapshot {
	return &model.Snapshot{
		Events: []model.Event{
			{ID: "ceremony", Name: "Trauung", Date: strPtr("2025-06-01"), TimeStart: strPtr("13:00"), TimeEnd: strPtr("14:30"), TransportTimeStart: strPtr("12:30")},
			{ID: "photos", Name: "Fotos", Date: strPtr("2025-06-01"), TimeStart: strPtr("14:00"), TimeEnd: strPtr("15:00")},
			{ID: "dinner", Name: "Dinner", Date: strPtr("2025-06-01"), TimeStart: strPtr("18:00"), TimeEnd: strPtr("01:00")},
			{ID: "brunch", Name: "Brunch", Date: strPtr("2025-06-02"), TimeStart: strPtr("11:00"), TimeEnd: strPtr("13:00")},
			{ID: "undated", Name: "Polterabend", TimeStart: strPtr("19:00"), TimeEnd: strPtr("23:00")},
		},
		Tables: []model.Table{
			{ID: "t1", Name: "Tisch 1", Capacity: 2, EventID: strPtr("dinner")},
			{ID: "t2", Name: "Tisch 2", Capacity: 4, EventID: strPtr("brunch")},
		},
		Guests: []model.Guest{
			{ID: "anna", FirstName: "Anna"},
			{ID: "ben", FirstName: "Ben"},
			{ID: "mia", FirstName: "Mia", IsChild: true, ParentGuestID: strPtr("anna"), SeatingPreference: model.SeatingPreferenceParentTable},
		},
		Assignments: []model.SeatingAssignment{
			{ID: "sa-anna", TableID: "t1", GuestID: "anna"},
		},
	}
}

func newTestService(snapshot *model.Snapshot) (*PlannerService, *fakeLoader, *fakeStore) {
	loader := &fakeLoader{snapshot: snapshot}
	store := &fakeStore{snapshot: snapshot}
	return NewPlannerService(loader, store, time.UTC, zap.NewNop()), loader, store
}

func TestPlannerService_Conflicts(t *testing.T) {
	svc, loader, _ := newTestService(weddingSnapshot())

	conflicts, err := svc.Conflicts(context.Background())
	require.NoError(t, err)

	require.Len(t, conflicts["ceremony"], 1)
	assert.Equal(t, "photos", conflicts["ceremony"][0].ID)
	require.Len(t, conflicts["photos"], 1)
	assert.Equal(t, "ceremony", conflicts["photos"][0].ID)
	assert.NotContains(t, conflicts, "dinner")
	assert.NotContains(t, conflicts, "undated")
	assert.Equal(t, 1, loader.calls)
}

func TestPlannerService_ConflictsLoadError(t *testing.T) {
	svc, loader, _ := newTestService(nil)
	loader.err = errors.New("connection refused")

	_, err := svc.Conflicts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load snapshot")
}

func TestPlannerService_EventConflicts(t *testing.T) {
	svc, _, _ := newTestService(weddingSnapshot())

	event, conflicts, err := svc.EventConflicts(context.Background(), "photos")
	require.NoError(t, err)
	assert.Equal(t, "Fotos", event.Name)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "ceremony", conflicts[0].ID)

	_, _, err = svc.EventConflicts(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestPlannerService_Seating(t *testing.T) {
	svc, _, _ := newTestService(weddingSnapshot())

	plan, err := svc.Seating(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, plan.Tables, 2)
	assert.Len(t, plan.Tables[0].Roster, 2)
	assert.Equal(t, 1, plan.Tables[0].Occupancy.Direct)
	require.Len(t, plan.Unassigned, 1)
	assert.Equal(t, "ben", plan.Unassigned[0].ID)

	plan, err = svc.Seating(context.Background(), "brunch")
	require.NoError(t, err)
	require.Len(t, plan.Tables, 1)
	assert.Equal(t, "t2", plan.Tables[0].Table.ID)
}

func TestPlannerService_TableSeating(t *testing.T) {
	svc, _, _ := newTestService(weddingSnapshot())

	ts, err := svc.TableSeating(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, "Tisch 1", ts.Table.Name)
	assert.Len(t, ts.Roster, 2)

	_, err = svc.TableSeating(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestPlannerService_DayProgram(t *testing.T) {
	svc, _, _ := newTestService(weddingSnapshot())

	program, err := svc.DayProgram(context.Background(), "2025-06-01")
	require.NoError(t, err)

	var order []string
	for _, item := range program.Items {
		order = append(order, item.Event.ID)
	}
	assert.Equal(t, []string{"ceremony", "photos", "dinner"}, order)
	assert.Len(t, program.Items[0].Conflicts, 1)
	assert.Empty(t, program.Items[2].Conflicts)
	assert.Equal(t, 7*time.Hour, program.Items[2].Window.Duration())

	_, err = svc.DayProgram(context.Background(), "1.6.2025")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestPlannerService_DayProgramNormalizesDates(t *testing.T) {
	snapshot := weddingSnapshot()
	snapshot.Events[1].Date = strPtr(" 2025-06-01 ")
	svc, _, _ := newTestService(snapshot)

	program, err := svc.DayProgram(context.Background(), "2025-06-01 ")
	require.NoError(t, err)

	var order []string
	for _, item := range program.Items {
		order = append(order, item.Event.ID)
	}
	assert.Equal(t, []string{"ceremony", "photos", "dinner"}, order)
	assert.Len(t, program.Items[1].Conflicts, 1)
}

func TestPlannerService_AssignGuest(t *testing.T) {
	snapshot := weddingSnapshot()
	svc, _, _ := newTestService(snapshot)
	ctx := context.Background()

	assignment, err := svc.AssignGuest(ctx, "t1", "ben")
	require.NoError(t, err)
	assert.NotEmpty(t, assignment.ID)

	unassigned, err := svc.Unassigned(ctx)
	require.NoError(t, err)
	assert.Empty(t, unassigned)

	_, err = svc.AssignGuest(ctx, "ghost-table", "ben")
	assert.ErrorIs(t, err, ErrTableNotFound)

	_, err = svc.AssignGuest(ctx, "t1", "ghost-guest")
	assert.ErrorIs(t, err, ErrGuestNotFound)

	// Третий гость за стол на двоих: разрешено, стол переполнен
	_, err = svc.AssignGuest(ctx, "t1", "mia")
	require.NoError(t, err)
	ts, err := svc.TableSeating(ctx, "t1")
	require.NoError(t, err)
	assert.True(t, ts.Occupancy.OverCapacity)
	assert.Equal(t, 3, ts.Occupancy.Direct)
}

func TestPlannerService_AssignGuestStoreError(t *testing.T) {
	svc, _, store := newTestService(weddingSnapshot())
	store.createErr = errors.New("unique violation")

	_, err := svc.AssignGuest(context.Background(), "t1", "ben")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unique violation")
}

func TestPlannerService_Unassign(t *testing.T) {
	svc, _, _ := newTestService(weddingSnapshot())
	ctx := context.Background()

	require.NoError(t, svc.Unassign(ctx, "sa-anna"))

	unassigned, err := svc.Unassigned(ctx)
	require.NoError(t, err)
	assert.Len(t, unassigned, 3)

	assert.ErrorIs(t, svc.Unassign(ctx, "sa-anna"), ErrAssignmentNotFound)
}

package handlers

import (
	"strings"
	"testing"
	"time"

	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/conflict"
	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/model"
	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/seating"
	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/service"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestFormatEventTime(t *testing.T) {
	e := model.Event{Date: strPtr("2025-06-01"), TimeStart: strPtr("13:00"), TimeEnd: strPtr("14:30")}
	assert.Equal(t, "2025-06-01 13:00–14:30", FormatEventTime(e))

	e.TransportTimeStart = strPtr("12:30")
	assert.Equal(t, "2025-06-01 13:00–14:30 (🚌 12:30 / –)", FormatEventTime(e))

	assert.Equal(t, "?–?", FormatEventTime(model.Event{}))

	// Время из базы с секундами и без ведущего нуля
	e = model.Event{TimeStart: strPtr("09:05:00"), TimeEnd: strPtr("9:45"), TransportTimeEnd: strPtr("later")}
	assert.Equal(t, "09:05–09:45 (🚌 – / later)", FormatEventTime(e))
}

func TestFormatConflicts(t *testing.T) {
	assert.Contains(t, FormatConflicts(nil), "нет")

	text := FormatConflicts([]conflict.Pair{{
		A: model.Event{ID: "a", Name: "Trauung"},
		B: model.Event{ID: "b"},
	}})
	assert.Contains(t, text, "Пересечения в программе: 1")
	assert.Contains(t, text, "Trauung")
	assert.Contains(t, text, "↔ b")
}

func TestFormatOccupancy(t *testing.T) {
	assert.Equal(t, "🟢 6/6", FormatOccupancy(seating.Occupancy{Direct: 6, Capacity: 6}))
	assert.Equal(t, "🔴 7/6", FormatOccupancy(seating.Occupancy{Direct: 7, Capacity: 6, OverCapacity: true}))
}

func TestFormatSeating(t *testing.T) {
	assert.Contains(t, FormatSeating(&seating.Plan{}), "не созданы")

	plan := &seating.Plan{
		Tables: []seating.TableSeating{
			{
				Table:     model.Table{ID: "t1", Name: "Tisch 1", Capacity: 6},
				Roster:    []model.Guest{{ID: "a", FirstName: "Anna", LastName: "Berg"}, {ID: "m", FirstName: "Mia", IsChild: true}},
				Occupancy: seating.Occupancy{Direct: 1, Capacity: 6},
			},
			{Table: model.Table{ID: "t2"}, Occupancy: seating.Occupancy{Capacity: 4}},
		},
		Unassigned: []model.Guest{{ID: "x"}},
	}

	text := FormatSeating(plan)
	assert.Contains(t, text, "Tisch 1 — 🟢 1/6")
	assert.Contains(t, text, "Anna Berg, Mia 👶")
	assert.Contains(t, text, "t2 — 🟢 0/4")
	assert.Contains(t, text, "(пусто)")
	assert.Contains(t, text, "Без места: 1")
}

func TestFormatUnassigned(t *testing.T) {
	assert.Contains(t, FormatUnassigned(nil), "Все гости рассажены")
	assert.Contains(t, FormatUnassigned([]model.Guest{{ID: "g1", LastName: "Schmidt"}}), "• Schmidt")
}

func TestFormatProgramCaption(t *testing.T) {
	program := &service.DayProgram{
		Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Items: []service.ProgramItem{
			{Conflicts: []model.Event{{ID: "x"}}},
			{},
		},
	}
	assert.Equal(t, "📅 01.06.2025: событий 2, с пересечениями 1", FormatProgramCaption(program))
}

func TestLimitLines(t *testing.T) {
	lines := make([]string, 0, 500)
	for i := 0; i < 500; i++ {
		lines = append(lines, strings.Repeat("x", 20))
	}

	text := limitLines(lines)
	assert.LessOrEqual(t, len(text), maxMessageLength+40)
	assert.Contains(t, text, "… и ещё")

	assert.Equal(t, "a\nb", limitLines([]string{"a", "b"}))
}

func TestParseProgramArgs(t *testing.T) {
	date, ok := parseProgramArgs("/program 2025-06-01")
	assert.True(t, ok)
	assert.Equal(t, "2025-06-01", date)

	_, ok = parseProgramArgs("/program")
	assert.False(t, ok)
}

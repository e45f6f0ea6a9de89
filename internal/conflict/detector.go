package conflict

import (
	"time"

	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/clock"
	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/model"
)

// Detector ищет пересечения событий с учётом трансфера
// Не хранит состояния между вызовами, каждый вызов считает всё заново
type Detector struct {
	loc *time.Location
}

type Option func(*Detector)

// WithLocation задаёт часовой пояс, в котором дата события означает полночь
func WithLocation(loc *time.Location) Option {
	return func(d *Detector) {
		if loc != nil {
			d.loc = loc
		}
	}
}

// NewDetector создаёт детектор конфликтов
func NewDetector(opts ...Option) *Detector {
	d := &Detector{loc: time.Local}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// EffectiveWindow возвращает окно события вместе с трансфером
// false - событие без даты или с неразборчивым временем, в проверке не участвует
func (d *Detector) EffectiveWindow(event model.Event) (clock.Window, bool) {
	if !event.HasDate() {
		return clock.Window{}, false
	}

	day, ok := clock.ParseDate(*event.Date, d.loc)
	if !ok {
		return clock.Window{}, false
	}

	start, startSet, ok := clock.ParseClockPtr(event.TimeStart)
	if !ok {
		return clock.Window{}, false
	}
	end, endSet, ok := clock.ParseClockPtr(event.TimeEnd)
	if !ok {
		return clock.Window{}, false
	}
	before, beforeSet, ok := clock.ParseClockPtr(event.TransportTimeStart)
	if !ok {
		return clock.Window{}, false
	}
	after, afterSet, ok := clock.ParseClockPtr(event.TransportTimeEnd)
	if !ok {
		return clock.Window{}, false
	}

	// Конец раньше начала - считаем что событие заканчивается на следующий день
	if startSet && endSet && end < start {
		end += clock.MinutesPerDay
	}

	// Трансфер расширяет окно: выезд раньше начала, возвращение позже конца.
	// Возвращение раньше начала события - это уже после полуночи,
	// выезд позже конца события - накануне
	if afterSet {
		if startSet && after < start {
			after += clock.MinutesPerDay
		}
		if endSet {
			end = max(end, after)
		} else {
			end, endSet = after, true
		}
	}
	if beforeSet {
		if startSet && endSet && before > end {
			before -= clock.MinutesPerDay
		}
		if startSet {
			start = min(start, before)
		} else {
			start, startSet = before, true
		}
	}

	if !startSet || !endSet {
		return clock.Window{}, false
	}

	if end < start {
		end += clock.MinutesPerDay
	}

	return clock.Window{
		Start: clock.AtMinutes(day, start),
		End:   clock.AtMinutes(day, end),
	}, true
}

// FindConflicts возвращает все остальные события, окна которых пересекаются с окном event
func (d *Detector) FindConflicts(event model.Event, allEvents []model.Event) []model.Event {
	window, ok := d.EffectiveWindow(event)
	if !ok {
		return nil
	}

	var conflicts []model.Event
	for _, other := range allEvents {
		if other.ID == event.ID {
			continue
		}
		otherWindow, ok := d.EffectiveWindow(other)
		if !ok {
			continue
		}
		if window.Overlaps(otherWindow) {
			conflicts = append(conflicts, other)
		}
	}

	return conflicts
}

// AllConflicts считает конфликты для каждого события
// События без конфликтов в результат не попадают
func (d *Detector) AllConflicts(events []model.Event) map[string][]model.Event {
	// Окна считаем один раз, дальше сравниваем каждую пару
	windows := make([]clock.Window, len(events))
	valid := make([]bool, len(events))
	for i, event := range events {
		windows[i], valid[i] = d.EffectiveWindow(event)
	}

	result := make(map[string][]model.Event)
	for i := range events {
		if !valid[i] {
			continue
		}
		for j := i + 1; j < len(events); j++ {
			if !valid[j] || events[i].ID == events[j].ID {
				continue
			}
			if windows[i].Overlaps(windows[j]) {
				result[events[i].ID] = append(result[events[i].ID], events[j])
				result[events[j].ID] = append(result[events[j].ID], events[i])
			}
		}
	}

	return result
}

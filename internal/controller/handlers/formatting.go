package handlers

import (
	"fmt"
	"strings"

	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/clock"
	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/conflict"
	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/model"
	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/seating"
	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/service"
)

// Лимит Telegram 4096 символов, оставляем запас под хвост
const maxMessageLength = 3900

// FormatEventTime форматирует время события вместе с трансфером
func FormatEventTime(e model.Event) string {
	var sb strings.Builder
	if e.Date != nil {
		sb.WriteString(*e.Date)
		sb.WriteString(" ")
	}
	sb.WriteString(clockOr(e.TimeStart, "?"))
	sb.WriteString("–")
	sb.WriteString(clockOr(e.TimeEnd, "?"))
	if e.TransportTimeStart != nil || e.TransportTimeEnd != nil {
		sb.WriteString(fmt.Sprintf(" (🚌 %s / %s)", clockOr(e.TransportTimeStart, "–"), clockOr(e.TransportTimeEnd, "–")))
	}
	return sb.String()
}

// FormatConflicts форматирует список пересечений
func FormatConflicts(pairs []conflict.Pair) string {
	if len(pairs) == 0 {
		return "✅ Пересечений в программе нет."
	}

	lines := []string{fmt.Sprintf("⚠️ Пересечения в программе: %d\n", len(pairs))}
	for _, p := range pairs {
		lines = append(lines, fmt.Sprintf("• %s [%s]\n  ↔ %s [%s]",
			eventName(p.A), FormatEventTime(p.A),
			eventName(p.B), FormatEventTime(p.B),
		))
	}
	return limitLines(lines)
}

// FormatOccupancy бейдж вместимости: считает только прямые назначения
func FormatOccupancy(occ seating.Occupancy) string {
	badge := fmt.Sprintf("%d/%d", occ.Direct, occ.Capacity)
	if occ.OverCapacity {
		return "🔴 " + badge
	}
	return "🟢 " + badge
}

// FormatSeating форматирует рассадку по столам
func FormatSeating(plan *seating.Plan) string {
	if len(plan.Tables) == 0 {
		return "🪑 Столы ещё не созданы."
	}

	lines := []string{"🪑 Рассадка:\n"}
	for _, ts := range plan.Tables {
		lines = append(lines, fmt.Sprintf("%s — %s", tableName(ts.Table), FormatOccupancy(ts.Occupancy)))
		if len(ts.Roster) == 0 {
			lines = append(lines, "   (пусто)")
			continue
		}
		names := make([]string, 0, len(ts.Roster))
		for _, g := range ts.Roster {
			names = append(names, guestName(g))
		}
		lines = append(lines, "   "+strings.Join(names, ", "))
	}

	if len(plan.Unassigned) > 0 {
		lines = append(lines, fmt.Sprintf("\n❔ Без места: %d (/unassigned)", len(plan.Unassigned)))
	}

	return limitLines(lines)
}

// FormatUnassigned форматирует список гостей без места
func FormatUnassigned(guests []model.Guest) string {
	if len(guests) == 0 {
		return "✅ Все гости рассажены."
	}

	lines := []string{fmt.Sprintf("❔ Гости без места: %d\n", len(guests))}
	for _, g := range guests {
		lines = append(lines, "• "+guestName(g))
	}
	return limitLines(lines)
}

// FormatProgramCaption подпись к картинке программы дня
func FormatProgramCaption(program *service.DayProgram) string {
	conflicting := 0
	for _, item := range program.Items {
		if len(item.Conflicts) > 0 {
			conflicting++
		}
	}
	caption := fmt.Sprintf("📅 %s: событий %d", program.Date.Format("02.01.2006"), len(program.Items))
	if conflicting > 0 {
		caption += fmt.Sprintf(", с пересечениями %d", conflicting)
	}
	return caption
}

func eventName(e model.Event) string {
	if e.Name != "" {
		return e.Name
	}
	return e.ID
}

func tableName(t model.Table) string {
	if t.Name != "" {
		return t.Name
	}
	return t.ID
}

func guestName(g model.Guest) string {
	name := g.FullName()
	if name == "" {
		name = g.ID
	}
	if g.IsChild {
		name += " 👶"
	}
	return name
}

func valueOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

// clockOr приводит "13:00:00" из базы к "13:00", неразборчивое значение показывает как есть
func clockOr(s *string, fallback string) string {
	v := valueOr(s, fallback)
	if minutes, ok := clock.ParseClock(v); ok {
		return clock.FormatClock(minutes)
	}
	return v
}

// limitLines склеивает строки и обрезает сообщение под лимит Telegram
func limitLines(lines []string) string {
	var sb strings.Builder
	for i, line := range lines {
		if sb.Len()+len(line)+1 > maxMessageLength {
			sb.WriteString(fmt.Sprintf("\n… и ещё %d строк", len(lines)-i))
			break
		}
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(line)
	}
	return sb.String()
}

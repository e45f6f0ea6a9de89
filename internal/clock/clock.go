package clock

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	MinutesPerDay  = 24 * 60
	minutesPerHour = 60
)

// ParseClock переводит "HH:MM" (или "HH:MM:SS" из PostgreSQL) в минуты от полуночи
// Возвращает false для любой строки, которую нельзя разобрать
func ParseClock(s string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, false
	}

	hours, ok := parseUnit(parts[0], 23)
	if !ok {
		return 0, false
	}

	minutes, ok := parseUnit(parts[1], 59)
	if !ok {
		return 0, false
	}

	// Секунды проверяем, но отбрасываем
	if len(parts) == 3 {
		if _, ok := parseUnit(parts[2], 59); !ok {
			return 0, false
		}
	}

	return hours*minutesPerHour + minutes, true
}

func parseUnit(s string, max int) (int, bool) {
	if s == "" || len(s) > 2 {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 || v > max {
		return 0, false
	}
	return v, true
}

// ParseClockPtr то же самое для nullable полей
// present=false если значение не задано
func ParseClockPtr(s *string) (minutes int, present bool, ok bool) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return 0, false, true
	}
	minutes, ok = ParseClock(*s)
	return minutes, true, ok
}

// FormatClock форматирует минуты от полуночи как HH:MM
func FormatClock(minutes int) string {
	minutes %= MinutesPerDay
	if minutes < 0 {
		minutes += MinutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", minutes/minutesPerHour, minutes%minutesPerHour)
}

// ParseDate разбирает YYYY-MM-DD и возвращает полночь этого дня в loc
func ParseDate(s string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// AtMinutes возвращает момент через minutes минут после полуночи day
// time.Date нормализует минуты больше суток и не сдвигает часы при переходе на летнее время
func AtMinutes(day time.Time, minutes int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 0, minutes, 0, 0, day.Location())
}

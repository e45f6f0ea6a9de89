package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"00:00", 0, true},
		{"13:00", 780, true},
		{"9:05", 545, true},
		{"23:59", 1439, true},
		{"14:30:00", 870, true},
		{" 12:30 ", 750, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"12", 0, false},
		{"ab:cd", 0, false},
		{"-1:30", 0, false},
		{"", 0, false},
		{"12:30:99", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseClock(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseClockPtr(t *testing.T) {
	_, present, ok := ParseClockPtr(nil)
	assert.False(t, present)
	assert.True(t, ok)

	empty := ""
	_, present, ok = ParseClockPtr(&empty)
	assert.False(t, present)
	assert.True(t, ok)

	bad := "noon"
	_, present, ok = ParseClockPtr(&bad)
	assert.True(t, present)
	assert.False(t, ok)

	good := "18:15"
	m, present, ok := ParseClockPtr(&good)
	assert.True(t, present)
	assert.True(t, ok)
	assert.Equal(t, 18*60+15, m)
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "14:30", FormatClock(870))
	assert.Equal(t, "01:00", FormatClock(MinutesPerDay+60))
	assert.Equal(t, "23:00", FormatClock(-60))
}

func TestParseDateAndAtMinutes(t *testing.T) {
	day, ok := ParseDate("2025-06-01", time.UTC)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), day)

	_, ok = ParseDate("01.06.2025", time.UTC)
	assert.False(t, ok)

	assert.Equal(t, time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC), AtMinutes(day, 870))
	assert.Equal(t, time.Date(2025, 6, 2, 1, 0, 0, 0, time.UTC), AtMinutes(day, MinutesPerDay+60))
}

func TestWindowOverlaps(t *testing.T) {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	w := func(from, to int) Window {
		return Window{Start: AtMinutes(day, from), End: AtMinutes(day, to)}
	}

	tests := []struct {
		name string
		a, b Window
		want bool
	}{
		{"touching at boundary", w(600, 660), w(660, 720), false},
		{"one minute overlap", w(600, 660), w(659, 661), true},
		{"contained", w(600, 720), w(630, 640), true},
		{"disjoint", w(600, 660), w(700, 720), false},
		{"identical", w(600, 660), w(600, 660), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}

	assert.Equal(t, time.Hour, w(600, 660).Duration())
}

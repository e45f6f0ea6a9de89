package clock

import "time"

// Window полуоткрытый интервал [Start, End)
type Window struct {
	Start time.Time
	End   time.Time
}

// Overlaps строгая проверка пересечения: касание границ пересечением не считается
func (w Window) Overlaps(other Window) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}

// Duration длительность окна
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

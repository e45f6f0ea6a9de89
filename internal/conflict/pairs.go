package conflict

import (
	"sort"

	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/model"
)

// Pair неупорядоченная пара конфликтующих событий, A.ID < B.ID
type Pair struct {
	A model.Event
	B model.Event
}

// Key стабильный ключ пары для сравнения между пересчётами
func (p Pair) Key() string {
	return p.A.ID + "|" + p.B.ID
}

// Pairs разворачивает карту конфликтов в список уникальных пар
func Pairs(all map[string][]model.Event) []Pair {
	byID := make(map[string]model.Event)
	for _, conflicts := range all {
		for _, e := range conflicts {
			byID[e.ID] = e
		}
	}

	seen := make(map[string]bool)
	var pairs []Pair
	for id, conflicts := range all {
		self, ok := byID[id]
		if !ok {
			// Событие попало в карту только ключом, восстанавливаем по ID
			self = model.Event{ID: id}
		}
		for _, other := range conflicts {
			p := Pair{A: self, B: other}
			if other.ID < id {
				p = Pair{A: other, B: self}
			}
			if seen[p.Key()] {
				continue
			}
			seen[p.Key()] = true
			pairs = append(pairs, p)
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Key() < pairs[j].Key()
	})

	return pairs
}

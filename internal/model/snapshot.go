package model

// Snapshot копия всех коллекций на момент чтения
// Ядро (conflict, seating) работает только со снимком и никогда его не изменяет
type Snapshot struct {
	Events      []Event             `json:"events"`
	Tables      []Table             `json:"tables"`
	Guests      []Guest             `json:"guests"`
	Assignments []SeatingAssignment `json:"seating_assignments"`
}

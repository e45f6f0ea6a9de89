package model

type SeatingPreference string

const (
	SeatingPreferenceParentTable SeatingPreference = "parent_table" // За столом родителя
	SeatingPreferenceKidsTable   SeatingPreference = "kids_table"   // Детский стол (только пожелание)
	SeatingPreferenceCustomTable SeatingPreference = "custom_table" // Конкретный стол из CustomTableID
)

type Guest struct {
	ID                string            `json:"id"`
	FirstName         string            `json:"first_name"`
	LastName          string            `json:"last_name"`
	IsChild           bool              `json:"is_child"`
	ParentGuestID     *string           `json:"parent_guest_id"`
	SeatingPreference SeatingPreference `json:"seating_preference"`
	CustomTableID     *string           `json:"custom_table_id"`
}

// FullName возвращает имя для отображения
func (g *Guest) FullName() string {
	if g.LastName == "" {
		return g.FirstName
	}
	if g.FirstName == "" {
		return g.LastName
	}
	return g.FirstName + " " + g.LastName
}

// HasCustomTable проверяет что ребёнок сидит за явно выбранным столом
func (g *Guest) HasCustomTable() bool {
	return g.IsChild &&
		g.SeatingPreference == SeatingPreferenceCustomTable &&
		g.CustomTableID != nil && *g.CustomTableID != ""
}

// InheritsParentTable проверяет что ребёнок садится за стол родителя
func (g *Guest) InheritsParentTable() bool {
	return g.IsChild &&
		g.SeatingPreference == SeatingPreferenceParentTable &&
		g.ParentGuestID != nil && *g.ParentGuestID != ""
}

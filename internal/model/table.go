package model

type TableType string

const (
	TableTypeRound       TableType = "round"
	TableTypeRectangular TableType = "rectangular"
	TableTypeHead        TableType = "head"
	TableTypeKids        TableType = "kids"
)

type Table struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	TableType TableType `json:"table_type"`
	EventID   *string   `json:"event_id"` // nil - стол не привязан к событию
	PositionX float64   `json:"position_x"`
	PositionY float64   `json:"position_y"`
}

// AppliesToEvent проверяет что стол относится к событию (или является общим)
func (t *Table) AppliesToEvent(eventID string) bool {
	return t.EventID == nil || *t.EventID == "" || *t.EventID == eventID
}

package model

// SeatingAssignment прямое назначение гостя за стол
type SeatingAssignment struct {
	ID      string `json:"id"`
	TableID string `json:"table_id"`
	GuestID string `json:"guest_id"`
}

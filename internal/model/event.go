package model

// Event событие свадебного дня (церемония, фотосессия, банкет...)
// Все временные поля хранятся в текстовом виде, как их присылает UI
type Event struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Date               *string `json:"date"`                 // YYYY-MM-DD, без даты событие не участвует в проверке конфликтов
	TimeStart          *string `json:"time_start"`           // HH:MM
	TimeEnd            *string `json:"time_end"`             // HH:MM
	TransportTimeStart *string `json:"transport_time_start"` // HH:MM, трансфер до начала
	TransportTimeEnd   *string `json:"transport_time_end"`   // HH:MM, трансфер после окончания
}

// HasDate проверяет что у события задана дата
func (e *Event) HasDate() bool {
	return e.Date != nil && *e.Date != ""
}

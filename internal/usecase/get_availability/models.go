package get_availability

import "time"

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceID string // Идентификатор услуги
	Date      string // Дата в формате YYYY-MM-DD, интерпретируется в часовом поясе барбершопа
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            string      `json:"date"`
	ServiceID       string      `json:"serviceId"`
	DurationMinutes int         `json:"durationMinutes"`
	Slots           []time.Time `json:"slots"` // Начала слотов в хронологическом порядке
}

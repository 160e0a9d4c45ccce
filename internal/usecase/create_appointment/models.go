package create_appointment

import (
	"encoding/json"
	"time"
)

// Request модель запроса на создание бронирования
type Request struct {
	ServiceID  string          // Идентификатор услуги
	StartTime  time.Time       // Время начала слота
	CustomerID *int64          // ID клиента из токена, nil для гостевого бронирования
	Name       string          // Имя клиента
	Email      *string         // Email (опционально)
	Phone      *string         // Телефон (опционально)
	Notes      *string         // Пожелания (опционально)
	Intake     json.RawMessage // Анкета клиента (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID                int64           `json:"id"`
	ServiceID         string          `json:"serviceId"`
	ServiceLabel      string          `json:"serviceLabel"`
	ServicePriceCents int             `json:"servicePriceCents"`
	StartTime         time.Time       `json:"startTime"`
	EndTime           time.Time       `json:"endTime"`
	DurationMinutes   int             `json:"durationMinutes"`
	Name              string          `json:"name"`
	Email             *string         `json:"email,omitempty"`
	Phone             *string         `json:"phone,omitempty"`
	Notes             *string         `json:"notes,omitempty"`
	Intake            json.RawMessage `json:"intake,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
}

package domain

import (
	"encoding/json"
	"time"
)

// Appointment бронирование клиента
//
// DurationMinutes фиксируется в момент бронирования из услуги:
// последующее изменение длительности услуги в справочнике не должно
// задним числом менять занятость уже созданных бронирований
// Поля ServiceLabel/ServicePriceCents денормализованы для истории
type Appointment struct {
	ID              int64
	ServiceID       string
	StartTime       time.Time
	DurationMinutes int

	CustomerID *int64
	Name       string
	Email      *string
	Phone      *string

	Notes  *string
	Intake json.RawMessage // ответы анкеты перед стрижкой, произвольный JSON

	// Денормализованные данные услуги на момент бронирования
	ServiceLabel      string
	ServicePriceCents int

	CreatedAt time.Time
}

// EndTime возвращает время окончания бронирования
// Считается от зафиксированной длительности, а не от текущей услуги
func (a *Appointment) EndTime() time.Time {
	return a.StartTime.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// Interval возвращает занятый бронированием интервал
func (a *Appointment) Interval() Interval {
	return Interval{Start: a.StartTime, End: a.EndTime()}
}

package domain

import "time"

// Service услуга барбершопа
// Справочные данные: длительность услуги определяет длину слота,
// который займёт бронирование
type Service struct {
	ID              string // стабильный строковый идентификатор ("haircut")
	Label           string
	DurationMinutes int
	PriceCents      int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Duration возвращает длительность услуги
func (s *Service) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}

// HasValidDuration проверяет, что длительность услуги положительная
// Нулевая или отрицательная длительность - ошибка конфигурации данных,
// такие услуги нельзя использовать для генерации слотов
func (s *Service) HasValidDuration() bool {
	return s.DurationMinutes > 0
}

package domain

import "time"

// Interval полуоткрытый временной интервал [Start, End)
// Единственный примитив для всех проверок пересечений в сервисе:
// занятость слотов, блокировки и бронирования считаются через него
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval создает интервал от start длительностью duration
func NewInterval(start time.Time, duration time.Duration) Interval {
	return Interval{Start: start, End: start.Add(duration)}
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов
// Интервалы, соприкасающиеся границами, НЕ пересекаются:
// [10:00, 10:45) и [10:45, 11:30) - это два разных слота
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// IsValid проверяет, что конец интервала строго позже начала
func (i Interval) IsValid() bool {
	return i.End.After(i.Start)
}

// Duration возвращает длительность интервала
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

package domain

import "time"

// AvailabilityBlock разовая блокировка времени (отпуск, перерыв, личные дела)
// Время недоступно для бронирования независимо от еженедельных окон
type AvailabilityBlock struct {
	ID        int64
	StartTime time.Time
	EndTime   time.Time
	Reason    *string
	CreatedAt time.Time
}

// IsValid проверяет, что конец блокировки строго позже начала
func (b *AvailabilityBlock) IsValid() bool {
	return b.EndTime.After(b.StartTime)
}

// Interval возвращает занятый блокировкой интервал
func (b *AvailabilityBlock) Interval() Interval {
	return Interval{Start: b.StartTime, End: b.EndTime}
}

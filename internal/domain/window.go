package domain

import "time"

// AvailabilityWindow еженедельное окно работы барбера
// Время хранится в минутах от локальной полуночи (0..1440),
// день недели - 0=воскресенье .. 6=суббота
// На один день недели допускается несколько окон (например, смена с перерывом)
type AvailabilityWindow struct {
	ID        int64
	Weekday   int
	StartMin  int
	EndMin    int
	CreatedAt time.Time
}

// IsValid проверяет инварианты окна: корректный день недели,
// минуты в пределах суток и конец строго позже начала
// Окно нулевой длины (start == end) недопустимо
func (w *AvailabilityWindow) IsValid() bool {
	if w.Weekday < 0 || w.Weekday > 6 {
		return false
	}
	if w.StartMin < 0 || w.EndMin > MinutesPerDay {
		return false
	}
	return w.EndMin > w.StartMin
}

// Anchor возвращает абсолютный интервал окна, привязанный
// к локальной полуночи указанной даты
func (w *AvailabilityWindow) Anchor(midnight time.Time) Interval {
	return Interval{
		Start: midnight.Add(time.Duration(w.StartMin) * time.Minute),
		End:   midnight.Add(time.Duration(w.EndMin) * time.Minute),
	}
}

package get_availability

import (
	"time"

	"github.com/m04kA/BarberBookingService/internal/domain"
)

// anchorWindows привязывает еженедельные окна к конкретной дате
// Окна приходят отсортированными по началу, поэтому и интервалы,
// и итоговые слоты получаются в хронологическом порядке
func anchorWindows(windows []*domain.AvailabilityWindow, dayStart time.Time) []domain.Interval {
	intervals := make([]domain.Interval, 0, len(windows))
	for _, w := range windows {
		intervals = append(intervals, w.Anchor(dayStart))
	}
	return intervals
}

// collectBusyIntervals собирает занятые интервалы дня: блокировки и бронирования
// Каждое бронирование занимает интервал своей сохраненной длительности,
// а не длительности запрашиваемой услуги
func collectBusyIntervals(blocks []*domain.AvailabilityBlock, appointments []*domain.Appointment) []domain.Interval {
	busy := make([]domain.Interval, 0, len(blocks)+len(appointments))
	for _, b := range blocks {
		busy = append(busy, b.Interval())
	}
	for _, a := range appointments {
		busy = append(busy, a.Interval())
	}
	return busy
}

// generateSlots генерирует доступные слоты внутри окон
//
// Кандидаты идут с фиксированным шагом step от начала каждого окна
// Кандидат доступен, если он целиком помещается в окно, не пересекается
// ни с одним занятым интервалом и (для сегодняшней даты) начинается не раньше
// cutoff - однократно зафиксированного текущего времени
//
// Пересечение строгое: слот, граничащий с бронированием, доступен
func generateSlots(
	windows []domain.Interval,
	busy []domain.Interval,
	duration time.Duration,
	step time.Duration,
	cutoff *time.Time,
) []time.Time {
	slots := make([]time.Time, 0)

	for _, window := range windows {
		for start := window.Start; ; start = start.Add(step) {
			candidate := domain.NewInterval(start, duration)
			if candidate.End.After(window.End) {
				break
			}

			if cutoff != nil && start.Before(*cutoff) {
				continue
			}

			if overlapsAny(candidate, busy) {
				continue
			}

			slots = append(slots, start)
		}
	}

	return slots
}

// overlapsAny проверяет пересечение кандидата хотя бы с одним занятым интервалом
func overlapsAny(candidate domain.Interval, busy []domain.Interval) bool {
	for _, b := range busy {
		if candidate.Overlaps(b) {
			return true
		}
	}
	return false
}

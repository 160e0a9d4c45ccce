package get_availability

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/BarberBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ServiceID) == "" {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Date) == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// parseDate парсит дату запроса как полночь в часовом поясе барбершопа
func parseDate(date string, loc *time.Location) (time.Time, error) {
	parsed, err := time.ParseInLocation(domain.DateFormat, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: expected format %s", ErrInvalidDate, domain.DateFormat)
	}
	return parsed, nil
}

// isSameDay проверяет, что два момента относятся к одному календарному дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

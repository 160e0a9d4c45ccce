package sendgrid

import "time"

// BookingNotification данные нового бронирования для письма владельцу
type BookingNotification struct {
	ServiceLabel  string
	StartTime     time.Time
	EndTime       time.Time
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Notes         string
}

package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// Limits
const (
	MinutesPerDay = 24 * 60

	MinWeekday = 0 // воскресенье
	MaxWeekday = 6 // суббота

	MaxNotesLength  = 500
	MaxReasonLength = 500
	MinNameLength   = 2
	MinPasswordLen  = 6
)

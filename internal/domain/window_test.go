package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAvailabilityWindow_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		window AvailabilityWindow
		valid  bool
	}{
		{"typical work day", AvailabilityWindow{Weekday: 1, StartMin: 600, EndMin: 1140}, true},
		{"full day", AvailabilityWindow{Weekday: 0, StartMin: 0, EndMin: 1440}, true},
		{"zero length", AvailabilityWindow{Weekday: 3, StartMin: 600, EndMin: 600}, false},
		{"end before start", AvailabilityWindow{Weekday: 3, StartMin: 700, EndMin: 600}, false},
		{"negative weekday", AvailabilityWindow{Weekday: -1, StartMin: 600, EndMin: 700}, false},
		{"weekday out of range", AvailabilityWindow{Weekday: 7, StartMin: 600, EndMin: 700}, false},
		{"negative start", AvailabilityWindow{Weekday: 2, StartMin: -10, EndMin: 700}, false},
		{"end past midnight", AvailabilityWindow{Weekday: 2, StartMin: 600, EndMin: 1441}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.window.IsValid())
		})
	}
}

func TestAvailabilityWindow_Anchor(t *testing.T) {
	loc, err := time.LoadLocation("America/Toronto")
	assert.NoError(t, err)

	midnight := time.Date(2026, 3, 10, 0, 0, 0, 0, loc)
	window := AvailabilityWindow{Weekday: 2, StartMin: 600, EndMin: 1140}

	interval := window.Anchor(midnight)

	assert.Equal(t, time.Date(2026, 3, 10, 10, 0, 0, 0, loc), interval.Start)
	assert.Equal(t, time.Date(2026, 3, 10, 19, 0, 0, 0, loc), interval.End)
}

func TestAvailabilityBlock_IsValid(t *testing.T) {
	start := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	valid := AvailabilityBlock{StartTime: start, EndTime: start.Add(2 * time.Hour)}
	assert.True(t, valid.IsValid())

	empty := AvailabilityBlock{StartTime: start, EndTime: start}
	assert.False(t, empty.IsValid())
}

func TestAppointment_EndTime(t *testing.T) {
	start := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	appt := Appointment{StartTime: start, DurationMinutes: 45}

	assert.Equal(t, start.Add(45*time.Minute), appt.EndTime())
	assert.Equal(t, Interval{Start: start, End: start.Add(45 * time.Minute)}, appt.Interval())
}

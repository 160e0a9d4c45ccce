package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInterval_Overlaps(t *testing.T) {
	base := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		a        Interval
		b        Interval
		overlaps bool
	}{
		{
			name:     "partial overlap",
			a:        NewInterval(base, 45*time.Minute),
			b:        NewInterval(base.Add(30*time.Minute), 45*time.Minute),
			overlaps: true,
		},
		{
			name:     "b inside a",
			a:        NewInterval(base, 2*time.Hour),
			b:        NewInterval(base.Add(30*time.Minute), 15*time.Minute),
			overlaps: true,
		},
		{
			name:     "identical intervals",
			a:        NewInterval(base, 45*time.Minute),
			b:        NewInterval(base, 45*time.Minute),
			overlaps: true,
		},
		{
			name:     "touching boundaries do not overlap",
			a:        NewInterval(base, 45*time.Minute),
			b:        NewInterval(base.Add(45*time.Minute), 45*time.Minute),
			overlaps: false,
		},
		{
			name:     "touching boundaries reversed",
			a:        NewInterval(base.Add(45*time.Minute), 45*time.Minute),
			b:        NewInterval(base, 45*time.Minute),
			overlaps: false,
		},
		{
			name:     "disjoint",
			a:        NewInterval(base, 30*time.Minute),
			b:        NewInterval(base.Add(2*time.Hour), 30*time.Minute),
			overlaps: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.overlaps, tt.b.Overlaps(tt.a))
		})
	}
}

func TestInterval_IsValid(t *testing.T) {
	base := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	assert.True(t, NewInterval(base, 15*time.Minute).IsValid())
	assert.False(t, NewInterval(base, 0).IsValid())
	assert.False(t, Interval{Start: base, End: base.Add(-time.Minute)}.IsValid())
}

func TestInterval_Duration(t *testing.T) {
	base := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, 45*time.Minute, NewInterval(base, 45*time.Minute).Duration())
}

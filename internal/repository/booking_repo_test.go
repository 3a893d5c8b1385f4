package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIntervalsOverlap(t *testing.T) {
	cases := []struct {
		name         string
		aStart, aEnd string
		bStart, bEnd string
		want         bool
	}{
		{"touching endpoints do not conflict", "10:00", "12:00", "12:00", "14:00", false},
		{"touching endpoints reversed", "12:00", "14:00", "10:00", "12:00", false},
		{"partial overlap", "10:00", "12:00", "11:00", "13:00", true},
		{"partial overlap reversed", "11:00", "13:00", "10:00", "12:00", true},
		{"contained interval", "09:00", "18:00", "10:00", "12:00", true},
		{"identical interval", "10:00", "12:00", "10:00", "12:00", true},
		{"disjoint", "08:00", "09:00", "13:00", "14:00", false},
		{"one minute of overlap", "10:00", "12:01", "12:00", "14:00", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, intervalsOverlap(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
		})
	}
}

func TestDayWindow(t *testing.T) {
	loc := time.FixedZone("NPT", 5*3600+45*60)
	eventDate := time.Date(2025, 6, 1, 15, 30, 45, 0, loc)

	start, end := dayWindow(eventDate)

	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, loc), end)
	assert.Equal(t, 24*time.Hour, end.Sub(start))
}

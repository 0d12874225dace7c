package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScheduledWorkHours(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		hours float64
		ok    bool
	}{
		{"day shift", "08:00", "17:00", 9, true},
		{"short day", "09:00", "13:00", 4, true},
		{"night shift crosses midnight", "22:00", "06:00", 0, false},
		{"zero-length", "08:00", "08:00", 0, false},
		{"unparsable start", "8am", "17:00", 0, false},
		{"unparsable end", "08:00", "5pm", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hours, ok := ScheduledWorkHours(tc.start, tc.end)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.hours, hours)
		})
	}
}

func TestScheduleOrDefault(t *testing.T) {
	e := Employee{}
	start, end := e.ScheduleOrDefault()
	assert.Equal(t, DefaultStartTime, start)
	assert.Equal(t, DefaultEndTime, end)

	e = Employee{StartTime: "10:00", EndTime: "19:00"}
	start, end = e.ScheduleOrDefault()
	assert.Equal(t, "10:00", start)
	assert.Equal(t, "19:00", end)
}

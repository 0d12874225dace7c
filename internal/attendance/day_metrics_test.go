package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func closed(date, in, out time.Time, inPurpose, outPurpose string) ClockEvent {
	return ClockEvent{
		EmployeeID:     1,
		Date:           date,
		TimeIn:         in,
		TimeOut:        &out,
		TimeInPurpose:  inPurpose,
		TimeOutPurpose: &outPurpose,
	}
}

func TestBuildDayMetrics_SumsSegmentsPerDate(t *testing.T) {
	day := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	morning := closed(day,
		time.Date(2026, 8, 3, 8, 0, 0, 0, manila),
		time.Date(2026, 8, 3, 12, 0, 0, 0, manila),
		PurposeClockIn, PurposeClockOut)
	afternoon := closed(day,
		time.Date(2026, 8, 3, 13, 0, 0, 0, manila),
		time.Date(2026, 8, 3, 17, 0, 0, 0, manila),
		PurposeClockIn, PurposeClockOut)

	days := BuildDayMetrics([]ClockEvent{morning, afternoon})
	require.Len(t, days, 1)
	assert.Equal(t, "2026-08-03", days[0].Date)
	assert.Equal(t, 480, days[0].WorkedMinutes)
	assert.True(t, days[0].HasClockIn)
	assert.True(t, days[0].HasClockOut)
}

func TestBuildDayMetrics_WrapsThroughMidnight(t *testing.T) {
	day := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	shift := closed(day,
		time.Date(2026, 8, 3, 22, 0, 0, 0, manila),
		time.Date(2026, 8, 4, 6, 0, 0, 0, manila),
		PurposeClockIn, PurposeClockOut)

	days := BuildDayMetrics([]ClockEvent{shift})
	require.Len(t, days, 1)
	assert.Equal(t, 480, days[0].WorkedMinutes)
}

func TestBuildDayMetrics_IgnoresOpenEvents(t *testing.T) {
	open := ClockEvent{
		EmployeeID:    1,
		Date:          time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC),
		TimeIn:        time.Date(2026, 8, 3, 8, 0, 0, 0, manila),
		TimeInPurpose: PurposeClockIn,
	}
	assert.Empty(t, BuildDayMetrics([]ClockEvent{open}))
}

func TestBuildDayMetrics_DropsDatesWithoutClockIn(t *testing.T) {
	day := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	aux := closed(day,
		time.Date(2026, 8, 3, 18, 0, 0, 0, manila),
		time.Date(2026, 8, 3, 20, 0, 0, 0, manila),
		PurposeEarlyStart, PurposeOfficialOvertime)
	aux.TimeInPurpose = "manual_adjustment"

	assert.Empty(t, BuildDayMetrics([]ClockEvent{aux}))
}

func TestBuildDayMetrics_ApprovalGatesExtraMinutes(t *testing.T) {
	day := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)

	approved := closed(day,
		time.Date(2026, 8, 3, 7, 0, 0, 0, manila),
		time.Date(2026, 8, 3, 18, 0, 0, 0, manila),
		PurposeClockIn, PurposeClockOut)
	approved.EarlyStartMinutes = 60
	approved.EarlyStartApproved = true
	approved.OfficialOvertimeMinutes = 60
	approved.OfficialOvertimeApproved = true

	unapproved := approved
	unapproved.EarlyStartApproved = false
	unapproved.OfficialOvertimeApproved = false

	days := BuildDayMetrics([]ClockEvent{approved})
	require.Len(t, days, 1)
	assert.Equal(t, 60, days[0].EarlyStartMinutes)
	assert.Equal(t, 60, days[0].OvertimeMinutes)

	days = BuildDayMetrics([]ClockEvent{unapproved})
	require.Len(t, days, 1)
	assert.Equal(t, 0, days[0].EarlyStartMinutes)
	assert.Equal(t, 0, days[0].OvertimeMinutes)
}

func TestBuildDayMetrics_ReviewFlagIsStickyAcrossTheDay(t *testing.T) {
	day := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)

	flagged := closed(day,
		time.Date(2026, 8, 3, 8, 0, 0, 0, manila),
		time.Date(2026, 8, 4, 9, 0, 0, 0, manila),
		PurposeClockIn, PurposeClockOut)
	flagged.RequiresAdminReview = true

	clean := closed(day,
		time.Date(2026, 8, 3, 13, 0, 0, 0, manila),
		time.Date(2026, 8, 3, 17, 0, 0, 0, manila),
		PurposeClockIn, PurposeClockOut)

	days := BuildDayMetrics([]ClockEvent{flagged, clean})
	require.Len(t, days, 1)
	assert.True(t, days[0].RequiresReview)
}

func TestBuildDayMetrics_HolidayKindCarriesOver(t *testing.T) {
	day := time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC)
	kind := "regular"
	event := closed(day,
		time.Date(2026, 12, 25, 8, 0, 0, 0, manila),
		time.Date(2026, 12, 25, 17, 0, 0, 0, manila),
		PurposeClockIn, PurposeClockOut)
	event.IsHoliday = true
	event.HolidayKind = &kind

	days := BuildDayMetrics([]ClockEvent{event})
	require.Len(t, days, 1)
	assert.True(t, days[0].IsHoliday)
	assert.Equal(t, "regular", days[0].HolidayKind)
}

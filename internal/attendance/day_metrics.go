package attendance

// DayMetrics is the per-date fold of closed clock events consumed by
// payroll generation. Minutes are whole minutes.
type DayMetrics struct {
	Date             string
	WorkedMinutes    int
	TardinessMinutes int
	// UndertimeMinutes carries the closing event's figure for display;
	// payroll recomputes undertime as scheduled minus worked minutes.
	UndertimeMinutes  int
	EarlyStartMinutes int
	OvertimeMinutes   int
	IsHoliday         bool
	HolidayKind       string
	HasClockIn        bool
	HasClockOut       bool
	RequiresReview    bool
}

// BuildDayMetrics folds clock events into one entry per calendar date, in
// ascending date order, dropping dates that never saw a clock-in. Open
// events contribute nothing. Tardiness and undertime ride on the purpose
// class that computed them; early-start and overtime minutes accumulate
// only when approved. The review flag is sticky across the day, and the
// payroll engine decides what a flagged day is worth.
func BuildDayMetrics(events []ClockEvent) []DayMetrics {
	byDate := make(map[string]*DayMetrics)
	order := make([]string, 0)

	for _, e := range events {
		if e.IsOpen() {
			continue
		}

		key := e.Date.Format("2006-01-02")
		day, ok := byDate[key]
		if !ok {
			day = &DayMetrics{Date: key}
			byDate[key] = day
			order = append(order, key)
		}

		if e.RequiresAdminReview {
			day.RequiresReview = true
		}

		day.WorkedMinutes += spanMinutes(e)

		if isClockInPurpose(e.TimeInPurpose) {
			day.HasClockIn = true
			day.TardinessMinutes = e.TardinessMinutes
			if e.EarlyStartApproved {
				day.EarlyStartMinutes += e.EarlyStartMinutes
			}
		}

		if e.TimeOutPurpose != nil && isClockOutPurpose(*e.TimeOutPurpose) {
			day.HasClockOut = true
			day.UndertimeMinutes = e.UndertimeMinutes
			if e.OfficialOvertimeApproved {
				day.OvertimeMinutes += e.OfficialOvertimeMinutes
			}
		}

		if e.IsHoliday {
			day.IsHoliday = true
			if day.HolidayKind == "" && e.HolidayKind != nil {
				day.HolidayKind = *e.HolidayKind
			}
		}
	}

	out := make([]DayMetrics, 0, len(order))
	for _, key := range order {
		if day := byDate[key]; day.HasClockIn {
			out = append(out, *day)
		}
	}
	return out
}

// spanMinutes measures a closed event, wrapping by minute-of-day when the
// out reading's clock value sits before the in reading's (a pair recorded
// across midnight).
func spanMinutes(e ClockEvent) int {
	inClock := e.TimeIn.Hour()*60 + e.TimeIn.Minute()
	outClock := e.TimeOut.Hour()*60 + e.TimeOut.Minute()
	if outClock < inClock {
		return (24*60 - inClock) + outClock
	}
	return int(e.TimeOut.Sub(e.TimeIn).Minutes())
}

package attendance

import (
	"strings"
	"time"
)

// Time-in purposes.
const (
	PurposeClockIn    = "clock_in"
	PurposeEarlyStart = "early_start"
)

// Time-out purposes.
const (
	PurposeClockOut               = "clock_out"
	PurposeUnapprovedUndertimeOut = "unapproved_undertime_out"
	PurposeOfficialOvertime       = "official_overtime"
)

// ClockEvent is one open/closed attendance record. The partial unique index
// on employee_id enforces at most one open event per employee at the
// database level; the service additionally re-checks inside its transaction.
type ClockEvent struct {
	ID         int64      `gorm:"primaryKey"`
	EmployeeID int64      `gorm:"column:employee_id;not null;index;index:idx_open_event_per_employee,unique,where:time_out IS NULL"`
	Date       time.Time  `gorm:"column:date;type:date;not null;index"`
	TimeIn     time.Time  `gorm:"column:time_in;type:timestamptz;not null"`
	TimeOut    *time.Time `gorm:"column:time_out;type:timestamptz"`

	TimeInPurpose  string  `gorm:"column:time_in_purpose;type:varchar(30);not null;default:'clock_in'"`
	TimeOutPurpose *string `gorm:"column:time_out_purpose;type:varchar(30)"`

	TardinessMinutes         int  `gorm:"column:tardiness_minutes;not null;default:0"`
	UndertimeMinutes         int  `gorm:"column:undertime_minutes;not null;default:0"`
	EarlyStartMinutes        int  `gorm:"column:early_start_minutes;not null;default:0"`
	EarlyStartApproved       bool `gorm:"column:early_start_approved;not null;default:false"`
	OfficialOvertimeMinutes  int  `gorm:"column:official_overtime_minutes;not null;default:0"`
	OfficialOvertimeApproved bool `gorm:"column:official_overtime_approved;not null;default:false"`

	IsHoliday   bool    `gorm:"column:is_holiday;not null;default:false"`
	HolidayKind *string `gorm:"column:holiday_kind;type:varchar(10)"`

	RequiresAdminReview bool    `gorm:"column:requires_admin_review;not null;default:false"`
	AdminReviewReason   *string `gorm:"column:admin_review_reason;type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ClockEvent) TableName() string {
	return "clock_events"
}

// IsOpen reports whether the event is still awaiting a time-out.
func (e *ClockEvent) IsOpen() bool {
	return e.TimeOut == nil
}

func isClockInPurpose(p string) bool {
	return p == PurposeClockIn || p == PurposeEarlyStart
}

func isClockOutPurpose(p string) bool {
	return p == PurposeClockOut || p == PurposeUnapprovedUndertimeOut || p == PurposeOfficialOvertime
}

// purposeMessage turns a purpose into the kiosk confirmation line, e.g.
// "Clock In recorded successfully".
func purposeMessage(purpose string) string {
	words := strings.Split(purpose, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ") + " recorded successfully"
}

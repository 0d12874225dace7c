package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusResigned = "resigned"
)

const (
	DefaultStartTime = "08:00"
	DefaultEndTime   = "17:00"
)

type Employee struct {
	ID           int64           `gorm:"primaryKey"`
	EmployeeCode string          `gorm:"column:employee_code;type:varchar(30);uniqueIndex;not null"`
	FirstName    string          `gorm:"column:first_name;type:varchar(80);not null"`
	LastName     string          `gorm:"column:last_name;type:varchar(80);not null"`
	BranchID     *int64          `gorm:"column:branch_id;index"`
	DailyRate    decimal.Decimal `gorm:"column:daily_rate;type:numeric(12,2);not null"`
	PINHash      string          `gorm:"column:pin_hash;type:varchar(100);not null"`
	StartTime    string          `gorm:"column:start_time;type:varchar(5);not null;default:'08:00'"`
	EndTime      string          `gorm:"column:end_time;type:varchar(5);not null;default:'17:00'"`
	Status       string          `gorm:"column:status;type:varchar(20);not null;default:'active';index"`
	StatusReason *string         `gorm:"column:status_reason;type:text"`
	ResignedAt   *time.Time      `gorm:"column:resigned_at"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Employee) TableName() string {
	return "employees"
}

// ScheduleOrDefault returns the employee's HH:MM schedule, substituting the
// standard day shift when either side is blank.
func (e *Employee) ScheduleOrDefault() (start, end string) {
	start, end = e.StartTime, e.EndTime
	if start == "" {
		start = DefaultStartTime
	}
	if end == "" {
		end = DefaultEndTime
	}
	return start, end
}

// ScheduledWorkHours derives the scheduled hours per day from an HH:MM
// start/end pair. ok is false when the pair is unparsable or non-positive
// (night shifts compute negative here); callers substitute the global
// default in that case.
func ScheduledWorkHours(startStr, endStr string) (float64, bool) {
	start, err := time.Parse("15:04", startStr)
	if err != nil {
		return 0, false
	}
	end, err := time.Parse("15:04", endStr)
	if err != nil {
		return 0, false
	}
	hours := end.Sub(start).Hours()
	if hours <= 0 {
		return 0, false
	}
	return hours, true
}

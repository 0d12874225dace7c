package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// StandardWorkDaysPerMonth converts a daily rate into the monthly
// equivalent the statutory schemes are defined against.
var StandardWorkDaysPerMonth = decimal.RequireFromString("21.75")

// Statutory scheme names as they appear on payslips.
const (
	DeductionSSS        = "SSS"
	DeductionPhilHealth = "PhilHealth"
	DeductionPagIBIG    = "Pag-IBIG"
)

type PayrollPeriod struct {
	ID        int64     `gorm:"primaryKey"`
	Name      string    `gorm:"column:name;type:varchar(80);not null"`
	StartDate time.Time `gorm:"column:start_date;type:date;not null;index"`
	EndDate   time.Time `gorm:"column:end_date;type:date;not null"`
	IsLocked  bool      `gorm:"column:is_locked;not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PayrollPeriod) TableName() string {
	return "payroll_periods"
}

// Days counts calendar days in the period, inclusive of both ends.
func (p *PayrollPeriod) Days() int {
	return int(p.EndDate.Sub(p.StartDate).Hours()/24) + 1
}

// ProrationFactor scales monthly statutory contributions to the period
// length: full month from 28 days, half month from 14, nothing below.
func (p *PayrollPeriod) ProrationFactor() decimal.Decimal {
	switch days := p.Days(); {
	case days >= 28:
		return decimal.NewFromInt(1)
	case days >= 14:
		return decimal.RequireFromString("0.5")
	default:
		return decimal.Zero
	}
}

// PayrollRecord is one employee's generated pay for one period. The
// daily rate is snapshotted at generation time and never re-read from
// the live employee row.
type PayrollRecord struct {
	ID              int64 `gorm:"primaryKey"`
	PayrollPeriodID int64 `gorm:"column:payroll_period_id;not null;index;uniqueIndex:idx_period_employee"`
	EmployeeID      int64 `gorm:"column:employee_id;not null;index;uniqueIndex:idx_period_employee"`

	LockedDailyRate decimal.Decimal `gorm:"column:locked_daily_rate;type:numeric(12,2);not null"`
	DaysWorked      decimal.Decimal `gorm:"column:days_worked;type:numeric(8,2);not null"`

	RegularPay         decimal.Decimal `gorm:"column:regular_pay;type:numeric(12,2);not null"`
	OvertimePay        decimal.Decimal `gorm:"column:overtime_pay;type:numeric(12,2);not null"`
	EarlyStartPay      decimal.Decimal `gorm:"column:early_start_pay;type:numeric(12,2);not null"`
	HolidayPay         decimal.Decimal `gorm:"column:holiday_pay;type:numeric(12,2);not null"`
	TardinessDeduction decimal.Decimal `gorm:"column:tardiness_deduction;type:numeric(12,2);not null"`
	UndertimeDeduction decimal.Decimal `gorm:"column:undertime_deduction;type:numeric(12,2);not null"`

	GrossPay        decimal.Decimal `gorm:"column:gross_pay;type:numeric(12,2);not null"`
	TotalDeductions decimal.Decimal `gorm:"column:total_deductions;type:numeric(12,2);not null"`
	NetPay          decimal.Decimal `gorm:"column:net_pay;type:numeric(12,2);not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PayrollRecord) TableName() string {
	return "payroll_records"
}

// DeductionItem carries one scheme's shares for one record.
type DeductionItem struct {
	ID              int64           `gorm:"primaryKey"`
	PayrollRecordID int64           `gorm:"column:payroll_record_id;not null;index"`
	Name            string          `gorm:"column:name;type:varchar(40);not null"`
	EmployeeAmount  decimal.Decimal `gorm:"column:employee_amount;type:numeric(12,2);not null"`
	EmployerAmount  decimal.Decimal `gorm:"column:employer_amount;type:numeric(12,2);not null"`
	CreatedAt       time.Time
}

func (DeductionItem) TableName() string {
	return "payroll_deduction_items"
}

package payroll

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	"github.com/3DBotics/attendance/internal/attendance"
	"github.com/3DBotics/attendance/internal/clock"
	"github.com/3DBotics/attendance/internal/employee"
	"github.com/3DBotics/attendance/internal/events"
	"github.com/3DBotics/attendance/internal/messaging/kafka"
	payrollerrors "github.com/3DBotics/attendance/internal/payroll/errors"
	"github.com/3DBotics/attendance/internal/payroll/statutory"
	"github.com/3DBotics/attendance/internal/settings"
	"github.com/3DBotics/attendance/internal/shared/contextutil"
)

const (
	overtimeMultiplier  = "1.25"
	regularHolidayRate  = "1.0"
	specialHolidayRate  = "0.3"
	thirteenthMonthBase = 12
)

// ThirteenthMonthEntry is one employee's year-to-date basic pay and the
// derived thirteenth-month amount.
type ThirteenthMonthEntry struct {
	EmployeeID      int64           `json:"employee_id"`
	EmployeeCode    string          `json:"employee_code"`
	Name            string          `json:"name"`
	TotalBasic      decimal.Decimal `json:"total_basic"`
	ThirteenthMonth decimal.Decimal `json:"thirteenth_month"`
}

type Service interface {
	CreatePeriod(ctx context.Context, name string, start, end time.Time) (*PayrollPeriod, error)
	ListPeriods(ctx context.Context) ([]PayrollPeriod, error)
	GenerateForPeriod(ctx context.Context, periodID int64) (int, error)
	LockPeriod(ctx context.Context, periodID int64) error
	RecordsForPeriod(ctx context.Context, periodID int64) ([]PayrollRecord, error)
	ItemsForRecord(ctx context.Context, recordID int64) ([]DeductionItem, error)
	ThirteenthMonth(ctx context.Context, year int) ([]ThirteenthMonthEntry, error)
}

type service struct {
	db          *gorm.DB
	repo        Repository
	attendances attendance.Repository
	employees   employee.Repository
	settings    settings.Repository
	outbox      kafka.OutboxRepository
	clk         clock.Clock

	// generation is serialized per period; concurrent requests for the
	// same period coalesce into one run.
	group singleflight.Group
}

func NewService(
	db *gorm.DB,
	repo Repository,
	attendances attendance.Repository,
	employees employee.Repository,
	settings settings.Repository,
	outbox kafka.OutboxRepository,
	clk clock.Clock,
) Service {
	return &service{
		db:          db,
		repo:        repo,
		attendances: attendances,
		employees:   employees,
		settings:    settings,
		outbox:      outbox,
		clk:         clk,
	}
}

func (s *service) CreatePeriod(ctx context.Context, name string, start, end time.Time) (*PayrollPeriod, error) {
	p := &PayrollPeriod{Name: name, StartDate: start, EndDate: end}
	if err := s.repo.CreatePeriod(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) ListPeriods(ctx context.Context) ([]PayrollPeriod, error) {
	return s.repo.FindAllPeriods(ctx)
}

// GenerateForPeriod rebuilds every employee's payroll record for the
// period inside one transaction, deleting any previous generation first.
// Unchanged attendance therefore yields identical records on a re-run.
func (s *service) GenerateForPeriod(ctx context.Context, periodID int64) (int, error) {
	count, err, _ := s.group.Do(fmt.Sprintf("generate:%d", periodID), func() (any, error) {
		return s.generate(ctx, periodID)
	})
	if err != nil {
		return 0, err
	}
	return count.(int), nil
}

func (s *service) generate(ctx context.Context, periodID int64) (int, error) {
	period, err := s.repo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return 0, err
	}
	if period == nil {
		return 0, payrollerrors.ErrPeriodNotFound
	}
	if period.IsLocked {
		return 0, payrollerrors.ErrPeriodLocked
	}

	staff, err := s.employees.FindAll(ctx, false)
	if err != nil {
		return 0, err
	}
	defaultHours := s.settings.DefaultWorkHours(ctx)
	factor := period.ProrationFactor()

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return 0, tx.Error
	}
	defer tx.Rollback()
	qtx := s.repo.WithTx(tx)
	attTx := s.attendances.WithTx(tx)

	if err := qtx.DeleteRecordsForPeriod(ctx, periodID); err != nil {
		return 0, err
	}

	for i := range staff {
		emp := &staff[i]
		rows, err := attTx.FindByEmployeeAndDateRange(ctx, emp.ID, period.StartDate, period.EndDate)
		if err != nil {
			return 0, err
		}

		record, items := s.buildRecord(period, emp, attendance.BuildDayMetrics(rows), defaultHours, factor)
		if err := qtx.CreateRecord(ctx, record); err != nil {
			return 0, err
		}
		for j := range items {
			items[j].PayrollRecordID = record.ID
		}
		if err := qtx.CreateItems(ctx, items); err != nil {
			return 0, err
		}
	}

	if err := s.enqueueGenerated(ctx, tx, period, len(staff)); err != nil {
		return 0, err
	}

	if err := tx.Commit().Error; err != nil {
		return 0, err
	}

	zap.L().Info("payroll generated",
		zap.Int64("period_id", periodID),
		zap.Int("records", len(staff)),
	)
	return len(staff), nil
}

// buildRecord runs the pay arithmetic for one employee over the period's
// day metrics.
func (s *service) buildRecord(
	period *PayrollPeriod,
	emp *employee.Employee,
	days []attendance.DayMetrics,
	defaultHours float64,
	prorationFactor decimal.Decimal,
) (*PayrollRecord, []DeductionItem) {
	startStr, endStr := emp.ScheduleOrDefault()
	schedHours, ok := employee.ScheduledWorkHours(startStr, endStr)
	if !ok {
		schedHours = defaultHours
	}
	schedMinutes := schedHours * 60

	hourlyRate := emp.DailyRate.Div(decimal.NewFromFloat(schedHours))
	minuteRate := hourlyRate.Div(decimal.NewFromInt(60))

	var (
		actualHours      float64
		tardinessMinutes int
		undertimeMinutes float64
		overtimeMinutes  int
		earlyMinutes     int
		holidayPay       decimal.Decimal
	)

	for _, day := range days {
		worked := float64(day.WorkedMinutes)
		if worked > schedMinutes {
			worked = schedMinutes
		}
		actualHours += worked / 60

		// Flagged days stay out of the automatic tardiness/undertime
		// totals until someone resolves them by hand.
		if !day.RequiresReview {
			if float64(day.WorkedMinutes) < schedMinutes {
				undertimeMinutes += schedMinutes - float64(day.WorkedMinutes)
			}
			tardinessMinutes += day.TardinessMinutes
		}

		overtimeMinutes += day.OvertimeMinutes
		earlyMinutes += day.EarlyStartMinutes

		if day.IsHoliday {
			switch day.HolidayKind {
			case "regular":
				holidayPay = holidayPay.Add(emp.DailyRate.Mul(decimal.RequireFromString(regularHolidayRate)))
			case "special":
				holidayPay = holidayPay.Add(emp.DailyRate.Mul(decimal.RequireFromString(specialHolidayRate)))
			}
		}
	}

	daysWorked := decimal.NewFromFloat(actualHours / schedHours).Round(2)
	regularPay := decimal.NewFromFloat(actualHours).Mul(hourlyRate).Round(2)
	overtimePay := decimal.NewFromFloat(float64(overtimeMinutes) / 60).
		Mul(hourlyRate).
		Mul(decimal.RequireFromString(overtimeMultiplier)).
		Round(2)
	earlyStartPay := decimal.NewFromFloat(float64(earlyMinutes) / 60).Mul(hourlyRate).Round(2)
	tardinessDeduction := decimal.NewFromInt(int64(tardinessMinutes)).Mul(minuteRate).Round(2)
	undertimeDeduction := decimal.NewFromFloat(undertimeMinutes).Mul(minuteRate).Round(2)

	grossPay := regularPay.Add(overtimePay).Add(earlyStartPay).Add(holidayPay.Round(2))

	monthlySalary := emp.DailyRate.Mul(StandardWorkDaysPerMonth)
	contributions := statutory.Compute(monthlySalary).Prorate(prorationFactor)
	totalDeductions := contributions.TotalEmployee()

	record := &PayrollRecord{
		PayrollPeriodID:    period.ID,
		EmployeeID:         emp.ID,
		LockedDailyRate:    emp.DailyRate,
		DaysWorked:         daysWorked,
		RegularPay:         regularPay,
		OvertimePay:        overtimePay,
		EarlyStartPay:      earlyStartPay,
		HolidayPay:         holidayPay.Round(2),
		TardinessDeduction: tardinessDeduction,
		UndertimeDeduction: undertimeDeduction,
		GrossPay:           grossPay,
		TotalDeductions:    totalDeductions,
		NetPay:             grossPay.Sub(totalDeductions),
	}

	items := []DeductionItem{
		{Name: DeductionSSS, EmployeeAmount: contributions.SSS.Employee, EmployerAmount: contributions.SSS.Employer},
		{Name: DeductionPhilHealth, EmployeeAmount: contributions.PhilHealth.Employee, EmployerAmount: contributions.PhilHealth.Employer},
		{Name: DeductionPagIBIG, EmployeeAmount: contributions.PagIBIG.Employee, EmployerAmount: contributions.PagIBIG.Employer},
	}
	return record, items
}

func (s *service) enqueueGenerated(ctx context.Context, tx *gorm.DB, period *PayrollPeriod, records int) error {
	payload, err := json.Marshal(events.PayrollPeriodGeneratedEvent{
		EventType:   "payroll.period.generated",
		PeriodID:    fmt.Sprintf("%d", period.ID),
		PeriodName:  period.Name,
		RecordCount: records,
		GeneratedBy: contextutil.GetAdminID(ctx),
		OccurredAt:  s.clk.Now(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "payroll_period",
		AggregateID:   fmt.Sprintf("%d", period.ID),
		EventType:     "payroll.period.generated",
		Topic:         events.PayrollPeriodGeneratedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) LockPeriod(ctx context.Context, periodID int64) error {
	period, err := s.repo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return err
	}
	if period == nil {
		return payrollerrors.ErrPeriodNotFound
	}
	return s.repo.LockPeriod(ctx, periodID)
}

func (s *service) RecordsForPeriod(ctx context.Context, periodID int64) ([]PayrollRecord, error) {
	period, err := s.repo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return nil, err
	}
	if period == nil {
		return nil, payrollerrors.ErrPeriodNotFound
	}
	return s.repo.FindRecordsByPeriod(ctx, periodID)
}

func (s *service) ItemsForRecord(ctx context.Context, recordID int64) ([]DeductionItem, error) {
	return s.repo.FindItemsByRecord(ctx, recordID)
}

func (s *service) ThirteenthMonth(ctx context.Context, year int) ([]ThirteenthMonthEntry, error) {
	staff, err := s.employees.FindAll(ctx, true)
	if err != nil {
		return nil, err
	}

	out := make([]ThirteenthMonthEntry, 0, len(staff))
	for i := range staff {
		emp := &staff[i]
		total, err := s.repo.SumRegularPayByYear(ctx, emp.ID, year)
		if err != nil {
			return nil, err
		}
		out = append(out, ThirteenthMonthEntry{
			EmployeeID:      emp.ID,
			EmployeeCode:    emp.EmployeeCode,
			Name:            emp.FirstName + " " + emp.LastName,
			TotalBasic:      total,
			ThirteenthMonth: total.Div(decimal.NewFromInt(thirteenthMonthBase)).Round(2),
		})
	}
	return out, nil
}

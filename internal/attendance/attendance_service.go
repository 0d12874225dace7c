package attendance

import (
	"context"
	"time"

	"gorm.io/gorm"

	atterrors "github.com/3DBotics/attendance/internal/attendance/errors"
	"github.com/3DBotics/attendance/internal/clock"
	"github.com/3DBotics/attendance/internal/employee"
	"github.com/3DBotics/attendance/internal/holiday"
	"github.com/3DBotics/attendance/internal/settings"
)

// reviewReasonNextDay is stored verbatim on records closed on a later
// calendar day without overtime approval.
const reviewReasonNextDay = "Next-day clock-out without overtime approval"

// scheduleAnchorWindow bounds how far a clock-in may sit from the scheduled
// start before the anchor shifts to the adjacent day. Keeps night-shift
// clock-ins shortly before midnight attached to the right schedule.
const scheduleAnchorWindow = 12 * time.Hour

type Service interface {
	TimeIn(ctx context.Context, employeeID int64, req TimeInRequest) (ClockEventResponse, error)
	TimeOut(ctx context.Context, employeeID int64, req TimeOutRequest) (ClockEventResponse, error)
	TodayEvents(ctx context.Context, employeeID int64) ([]ClockEventResponse, bool, error)
	ListByDateRange(ctx context.Context, employeeID int64, start, end time.Time) ([]ClockEventResponse, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	db        *gorm.DB
	repo      Repository
	employees employee.Repository
	holidays  holiday.Repository
	settings  settings.Repository
	clk       clock.Clock
	locks     *employeeLocker
}

func NewService(
	db *gorm.DB,
	repo Repository,
	employees employee.Repository,
	holidays holiday.Repository,
	settings settings.Repository,
	clk clock.Clock,
) Service {
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		holidays:  holidays,
		settings:  settings,
		clk:       clk,
		locks:     newEmployeeLocker(),
	}
}

func (s *service) TimeIn(ctx context.Context, employeeID int64, req TimeInRequest) (ClockEventResponse, error) {
	if !isClockInPurpose(req.Purpose) {
		return ClockEventResponse{}, atterrors.ErrUnknownPurpose
	}

	unlock := s.locks.lock(employeeID)
	defer unlock()

	emp, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		return ClockEventResponse{}, err
	}

	now := s.clk.Now()

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return ClockEventResponse{}, tx.Error
	}
	defer tx.Rollback()
	qtx := s.repo.WithTx(tx)

	open, err := qtx.FindOpenOnDate(ctx, employeeID, now)
	if err != nil {
		return ClockEventResponse{}, err
	}
	if open != nil {
		return ClockEventResponse{}, atterrors.ErrDuplicateOpenRecord
	}

	event := &ClockEvent{
		EmployeeID:    employeeID,
		Date:          dateOnly(now),
		TimeIn:        now,
		TimeInPurpose: req.Purpose,
	}

	// Time metrics attach to the day-starting purpose only; auxiliary
	// time-ins record the timestamp and nothing else.
	if req.Purpose == PurposeClockIn {
		startStr, _ := emp.ScheduleOrDefault()
		scheduledStart := anchorSchedule(now, startStr, employee.DefaultStartTime)
		// A clock-in more than twelve hours away from today's scheduled
		// start belongs to the adjacent day's shift.
		if now.Sub(scheduledStart) > scheduleAnchorWindow {
			scheduledStart = scheduledStart.AddDate(0, 0, 1)
		} else if scheduledStart.Sub(now) > scheduleAnchorWindow {
			scheduledStart = scheduledStart.AddDate(0, 0, -1)
		}

		hasPrior, err := qtx.HasClockInOn(ctx, employeeID, now)
		if err != nil {
			return ClockEventResponse{}, err
		}

		if !hasPrior {
			// Tardiness needs the grace period strictly elapsed; landing
			// exactly on its boundary is still on time.
			grace := time.Duration(s.settings.GracePeriodMinutes(ctx)) * time.Minute
			graceEnd := scheduledStart.Add(grace)
			if now.After(graceEnd) {
				event.TardinessMinutes = wholeMinutes(now.Sub(scheduledStart))
			}

			if now.Before(scheduledStart) {
				event.EarlyStartMinutes = wholeMinutes(scheduledStart.Sub(now))
				event.EarlyStartApproved = req.EarlyStartApproved
			}
		}
	}

	h, err := s.holidays.FindByDate(ctx, now)
	if err != nil {
		return ClockEventResponse{}, err
	}
	if h != nil {
		event.IsHoliday = true
		kind := h.Kind
		event.HolidayKind = &kind
	}

	if err := qtx.Create(ctx, event); err != nil {
		return ClockEventResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return ClockEventResponse{}, err
	}

	return mapToResponse(*event, purposeMessage(req.Purpose)), nil
}

func (s *service) TimeOut(ctx context.Context, employeeID int64, req TimeOutRequest) (ClockEventResponse, error) {
	if !isClockOutPurpose(req.Purpose) {
		return ClockEventResponse{}, atterrors.ErrUnknownPurpose
	}

	unlock := s.locks.lock(employeeID)
	defer unlock()

	emp, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		return ClockEventResponse{}, err
	}

	now := s.clk.Now()

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return ClockEventResponse{}, tx.Error
	}
	defer tx.Rollback()
	qtx := s.repo.WithTx(tx)

	open, err := qtx.FindLatestOpen(ctx, employeeID)
	if err != nil {
		return ClockEventResponse{}, err
	}
	if open == nil {
		return ClockEventResponse{}, atterrors.ErrNoOpenRecord
	}

	if req.Purpose == PurposeClockOut || req.Purpose == PurposeUnapprovedUndertimeOut {
		startStr, endStr := emp.ScheduleOrDefault()
		// The stored date column comes back zoned UTC; rebase it into
		// the clock's zone before deriving wall-time deadlines from it.
		openDay := rebaseDate(open.Date, now.Location())
		scheduledEnd := anchorSchedule(openDay, endStr, employee.DefaultEndTime)
		nightShift := scheduleHour(endStr, employee.DefaultEndTime) < scheduleHour(startStr, employee.DefaultStartTime)
		if nightShift {
			scheduledEnd = scheduledEnd.AddDate(0, 0, 1)
		}

		approved := req.OfficialOvertimeApproved
		crossedDay := now.Format("2006-01-02") > open.Date.Format("2006-01-02")

		switch {
		case crossedDay && !approved && !nightShift:
			// Plausibly a forgotten clock-out. Leave the metrics to an
			// admin instead of crediting a full night of overtime.
			open.RequiresAdminReview = true
			reason := reviewReasonNextDay
			open.AdminReviewReason = &reason

		case !now.Before(scheduledEnd):
			if approved {
				open.OfficialOvertimeMinutes = wholeMinutes(now.Sub(scheduledEnd))
				open.OfficialOvertimeApproved = true
			}

		default:
			open.UndertimeMinutes = wholeMinutes(scheduledEnd.Sub(now))
		}
	}

	open.TimeOut = &now
	purpose := req.Purpose
	open.TimeOutPurpose = &purpose

	if err := qtx.Update(ctx, open); err != nil {
		return ClockEventResponse{}, err
	}
	if err := tx.Commit().Error; err != nil {
		return ClockEventResponse{}, err
	}

	return mapToResponse(*open, purposeMessage(req.Purpose)), nil
}

func (s *service) TodayEvents(ctx context.Context, employeeID int64) ([]ClockEventResponse, bool, error) {
	now := s.clk.Now()
	rows, err := s.repo.FindByEmployeeAndDate(ctx, employeeID, now)
	if err != nil {
		return nil, false, err
	}

	hasOpen := false
	out := make([]ClockEventResponse, 0, len(rows))
	for _, e := range rows {
		if e.IsOpen() {
			hasOpen = true
		}
		out = append(out, mapToResponse(e, ""))
	}
	return out, hasOpen, nil
}

func (s *service) ListByDateRange(ctx context.Context, employeeID int64, start, end time.Time) ([]ClockEventResponse, error) {
	rows, err := s.repo.FindByEmployeeAndDateRange(ctx, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	out := make([]ClockEventResponse, 0, len(rows))
	for _, e := range rows {
		out = append(out, mapToResponse(e, ""))
	}
	return out, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// anchorSchedule places an HH:MM wall time onto day's calendar date in
// day's zone. Unparsable values fall back to the standard shift.
func anchorSchedule(day time.Time, hhmm, fallback string) time.Time {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		t, _ = time.Parse("15:04", fallback)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location())
}

func scheduleHour(hhmm, fallback string) int {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		t, _ = time.Parse("15:04", fallback)
	}
	return t.Hour()
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func rebaseDate(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func wholeMinutes(d time.Duration) int {
	return int(d.Minutes())
}

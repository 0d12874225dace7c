package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	atterrors "github.com/3DBotics/attendance/internal/attendance/errors"
	"github.com/3DBotics/attendance/internal/clock"
	"github.com/3DBotics/attendance/internal/employee"
	"github.com/3DBotics/attendance/internal/holiday"
)

var manila = time.FixedZone("PHT", 8*3600)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

type fakeRepo struct {
	createFn         func(ctx context.Context, e *ClockEvent) error
	updateFn         func(ctx context.Context, e *ClockEvent) error
	findOpenOnDateFn func(ctx context.Context, employeeID int64, date time.Time) (*ClockEvent, error)
	findLatestOpenFn func(ctx context.Context, employeeID int64) (*ClockEvent, error)
	hasClockInOnFn   func(ctx context.Context, employeeID int64, date time.Time) (bool, error)
	findByRangeFn    func(ctx context.Context, employeeID int64, start, end time.Time) ([]ClockEvent, error)
	findByDateFn     func(ctx context.Context, employeeID int64, date time.Time) ([]ClockEvent, error)
	findByIDFn       func(ctx context.Context, id int64) (*ClockEvent, error)
	deleteFn         func(ctx context.Context, id int64) error
}

func (f *fakeRepo) WithTx(tx *gorm.DB) Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, e *ClockEvent) error {
	return f.createFn(ctx, e)
}
func (f *fakeRepo) Update(ctx context.Context, e *ClockEvent) error {
	return f.updateFn(ctx, e)
}
func (f *fakeRepo) FindOpenOnDate(ctx context.Context, employeeID int64, date time.Time) (*ClockEvent, error) {
	return f.findOpenOnDateFn(ctx, employeeID, date)
}
func (f *fakeRepo) FindLatestOpen(ctx context.Context, employeeID int64) (*ClockEvent, error) {
	return f.findLatestOpenFn(ctx, employeeID)
}
func (f *fakeRepo) HasClockInOn(ctx context.Context, employeeID int64, date time.Time) (bool, error) {
	return f.hasClockInOnFn(ctx, employeeID, date)
}
func (f *fakeRepo) FindByEmployeeAndDateRange(ctx context.Context, employeeID int64, start, end time.Time) ([]ClockEvent, error) {
	return f.findByRangeFn(ctx, employeeID, start, end)
}
func (f *fakeRepo) FindByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) ([]ClockEvent, error) {
	return f.findByDateFn(ctx, employeeID, date)
}
func (f *fakeRepo) FindByID(ctx context.Context, id int64) (*ClockEvent, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) Delete(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

type fakeEmployeeRepo struct {
	emp *employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e *employee.Employee) error { return nil }
func (f *fakeEmployeeRepo) FindByID(ctx context.Context, id int64) (*employee.Employee, error) {
	return f.emp, nil
}
func (f *fakeEmployeeRepo) FindAll(ctx context.Context, includeResigned bool) ([]employee.Employee, error) {
	return []employee.Employee{*f.emp}, nil
}
func (f *fakeEmployeeRepo) FindActive(ctx context.Context) ([]employee.Employee, error) {
	return []employee.Employee{*f.emp}, nil
}
func (f *fakeEmployeeRepo) Update(ctx context.Context, e *employee.Employee) error { return nil }

type fakeHolidayRepo struct {
	holiday *holiday.Holiday
}

func (f *fakeHolidayRepo) Create(ctx context.Context, h *holiday.Holiday) error { return nil }
func (f *fakeHolidayRepo) FindByDate(ctx context.Context, date time.Time) (*holiday.Holiday, error) {
	return f.holiday, nil
}
func (f *fakeHolidayRepo) FindAll(ctx context.Context) ([]holiday.Holiday, error) { return nil, nil }
func (f *fakeHolidayRepo) Delete(ctx context.Context, id int64) error             { return nil }

type fakeSettingsRepo struct {
	grace     int
	workHours float64
}

func (f *fakeSettingsRepo) Get(ctx context.Context, key string) (string, error) { return "", nil }
func (f *fakeSettingsRepo) Set(ctx context.Context, key, value string) error    { return nil }
func (f *fakeSettingsRepo) GracePeriodMinutes(ctx context.Context) int          { return f.grace }
func (f *fakeSettingsRepo) DefaultWorkHours(ctx context.Context) float64        { return f.workHours }

func dayShiftEmployee() *employee.Employee {
	return &employee.Employee{
		ID:        1,
		DailyRate: decimal.NewFromInt(800),
		StartTime: "08:00",
		EndTime:   "17:00",
		Status:    employee.StatusActive,
	}
}

func nightShiftEmployee() *employee.Employee {
	e := dayShiftEmployee()
	e.StartTime = "22:00"
	e.EndTime = "06:00"
	return e
}

func newRecorder(t *testing.T, repo *fakeRepo, emp *employee.Employee, at time.Time) (Service, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewService(
		db,
		repo,
		&fakeEmployeeRepo{emp: emp},
		&fakeHolidayRepo{},
		&fakeSettingsRepo{grace: 10, workHours: 8},
		clock.Fixed{T: at},
	), mock
}

func openlessRepo(saved **ClockEvent) *fakeRepo {
	repo := &fakeRepo{}
	repo.findOpenOnDateFn = func(ctx context.Context, employeeID int64, date time.Time) (*ClockEvent, error) {
		return nil, nil
	}
	repo.hasClockInOnFn = func(ctx context.Context, employeeID int64, date time.Time) (bool, error) {
		return false, nil
	}
	repo.createFn = func(ctx context.Context, e *ClockEvent) error {
		e.ID = 10
		*saved = e
		return nil
	}
	return repo
}

func TestTimeIn_RejectsDuplicateOpenRecord(t *testing.T) {
	now := time.Date(2026, 8, 3, 8, 0, 0, 0, manila)
	repo := &fakeRepo{
		findOpenOnDateFn: func(ctx context.Context, employeeID int64, date time.Time) (*ClockEvent, error) {
			return &ClockEvent{ID: 7, EmployeeID: employeeID}, nil
		},
	}
	svc, mock := newRecorder(t, repo, dayShiftEmployee(), now)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.TimeIn(context.Background(), 1, TimeInRequest{Purpose: PurposeClockIn})
	assert.ErrorIs(t, err, atterrors.ErrDuplicateOpenRecord)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimeIn_StaleOpenRecordFromEarlierDayStillRejects(t *testing.T) {
	// An event left open on a previous day is invisible to the date-scoped
	// check; the partial unique index catches it on insert and the
	// violation must come back as the same domain rejection.
	now := time.Date(2026, 8, 4, 8, 0, 0, 0, manila)
	repo := &fakeRepo{
		findOpenOnDateFn: func(ctx context.Context, employeeID int64, date time.Time) (*ClockEvent, error) {
			return nil, nil
		},
		hasClockInOnFn: func(ctx context.Context, employeeID int64, date time.Time) (bool, error) {
			return false, nil
		},
		createFn: func(ctx context.Context, e *ClockEvent) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "idx_open_event_per_employee"}
		},
	}
	svc, mock := newRecorder(t, repo, dayShiftEmployee(), now)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.TimeIn(context.Background(), 1, TimeInRequest{Purpose: PurposeClockIn})
	assert.ErrorIs(t, err, atterrors.ErrDuplicateOpenRecord)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimeIn_TardinessMeasuredFromScheduledStart(t *testing.T) {
	now := time.Date(2026, 8, 3, 8, 15, 0, 0, manila)
	var saved *ClockEvent
	repo := openlessRepo(&saved)
	svc, mock := newRecorder(t, repo, dayShiftEmployee(), now)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.TimeIn(context.Background(), 1, TimeInRequest{Purpose: PurposeClockIn})
	require.NoError(t, err)

	assert.Equal(t, 15, saved.TardinessMinutes)
	assert.Equal(t, 0, saved.EarlyStartMinutes)
	assert.Equal(t, "Clock In recorded successfully", resp.Message)
}

func TestTimeIn_GraceBoundaryIsNotTardy(t *testing.T) {
	// Exactly scheduledStart + grace. Tardiness needs a strictly later
	// clock-in.
	now := time.Date(2026, 8, 3, 8, 10, 0, 0, manila)
	var saved *ClockEvent
	repo := openlessRepo(&saved)
	svc, mock := newRecorder(t, repo, dayShiftEmployee(), now)

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.TimeIn(context.Background(), 1, TimeInRequest{Purpose: PurposeClockIn})
	require.NoError(t, err)

	assert.Equal(t, 0, saved.TardinessMinutes)
}

// Early start and tardiness are mutually exclusive on the first clock-in
// of a day: a pre-schedule arrival records early minutes and can never be
// tardy at the same instant.
func TestTimeIn_EarlyStartExcludesTardiness(t *testing.T) {
	now := time.Date(2026, 8, 3, 7, 30, 0, 0, manila)
	var saved *ClockEvent
	repo := openlessRepo(&saved)
	svc, mock := newRecorder(t, repo, dayShiftEmployee(), now)

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.TimeIn(context.Background(), 1, TimeInRequest{Purpose: PurposeClockIn, EarlyStartApproved: true})
	require.NoError(t, err)

	assert.Equal(t, 30, saved.EarlyStartMinutes)
	assert.True(t, saved.EarlyStartApproved)
	assert.Equal(t, 0, saved.TardinessMinutes)
}

func TestTimeIn_SecondClockInOfDayCarriesNoMetrics(t *testing.T) {
	now := time.Date(2026, 8, 3, 13, 0, 0, 0, manila)
	var saved *ClockEvent
	repo := openlessRepo(&saved)
	repo.hasClockInOnFn = func(ctx context.Context, employeeID int64, date time.Time) (bool, error) {
		return true, nil
	}
	svc, mock := newRecorder(t, repo, dayShiftEmployee(), now)

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.TimeIn(context.Background(), 1, TimeInRequest{Purpose: PurposeClockIn})
	require.NoError(t, err)

	assert.Equal(t, 0, saved.TardinessMinutes)
	assert.Equal(t, 0, saved.EarlyStartMinutes)
}

func TestTimeIn_NightShiftBeforeMidnightAnchorsToSameShift(t *testing.T) {
	// 21:55 against a 22:00 start is five early minutes, not a rejected
	// anchor a day away.
	now := time.Date(2026, 8, 3, 21, 55, 0, 0, manila)
	var saved *ClockEvent
	repo := openlessRepo(&saved)
	svc, mock := newRecorder(t, repo, nightShiftEmployee(), now)

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.TimeIn(context.Background(), 1, TimeInRequest{Purpose: PurposeClockIn})
	require.NoError(t, err)

	assert.Equal(t, 5, saved.EarlyStartMinutes)
	assert.Equal(t, 0, saved.TardinessMinutes)
}

func TestTimeIn_MarksHoliday(t *testing.T) {
	now := time.Date(2026, 12, 25, 8, 0, 0, 0, manila)
	var saved *ClockEvent
	repo := openlessRepo(&saved)
	db, mock := newTestDB(t)
	svc := NewService(
		db,
		repo,
		&fakeEmployeeRepo{emp: dayShiftEmployee()},
		&fakeHolidayRepo{holiday: &holiday.Holiday{Kind: holiday.KindRegular}},
		&fakeSettingsRepo{grace: 10, workHours: 8},
		clock.Fixed{T: now},
	)

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.TimeIn(context.Background(), 1, TimeInRequest{Purpose: PurposeClockIn})
	require.NoError(t, err)

	assert.True(t, saved.IsHoliday)
	require.NotNil(t, saved.HolidayKind)
	assert.Equal(t, holiday.KindRegular, *saved.HolidayKind)
}

func TestTimeIn_UnknownPurpose(t *testing.T) {
	svc, _ := newRecorder(t, &fakeRepo{}, dayShiftEmployee(), time.Now())
	_, err := svc.TimeIn(context.Background(), 1, TimeInRequest{Purpose: "lunch"})
	assert.ErrorIs(t, err, atterrors.ErrUnknownPurpose)
}

func TestTimeOut_RejectsWithoutOpenRecord(t *testing.T) {
	now := time.Date(2026, 8, 3, 17, 0, 0, 0, manila)
	repo := &fakeRepo{
		findLatestOpenFn: func(ctx context.Context, employeeID int64) (*ClockEvent, error) {
			return nil, nil
		},
	}
	svc, mock := newRecorder(t, repo, dayShiftEmployee(), now)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.TimeOut(context.Background(), 1, TimeOutRequest{Purpose: PurposeClockOut})
	assert.ErrorIs(t, err, atterrors.ErrNoOpenRecord)
}

func closingRepo(open *ClockEvent, saved **ClockEvent) *fakeRepo {
	return &fakeRepo{
		findLatestOpenFn: func(ctx context.Context, employeeID int64) (*ClockEvent, error) {
			return open, nil
		},
		updateFn: func(ctx context.Context, e *ClockEvent) error {
			*saved = e
			return nil
		},
	}
}

func TestTimeOut_Undertime(t *testing.T) {
	now := time.Date(2026, 8, 3, 16, 30, 0, 0, manila)
	open := &ClockEvent{
		ID:         3,
		EmployeeID: 1,
		Date:       time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC),
		TimeIn:     time.Date(2026, 8, 3, 8, 0, 0, 0, manila),
	}
	var saved *ClockEvent
	svc, mock := newRecorder(t, closingRepo(open, &saved), dayShiftEmployee(), now)

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.TimeOut(context.Background(), 1, TimeOutRequest{Purpose: PurposeClockOut})
	require.NoError(t, err)

	assert.Equal(t, 30, saved.UndertimeMinutes)
	assert.False(t, saved.RequiresAdminReview)
	require.NotNil(t, saved.TimeOut)
	assert.True(t, saved.TimeOut.Equal(now))
}

func TestTimeOut_ApprovedOvertime(t *testing.T) {
	now := time.Date(2026, 8, 3, 18, 0, 0, 0, manila)
	open := &ClockEvent{
		ID:         3,
		EmployeeID: 1,
		Date:       time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC),
		TimeIn:     time.Date(2026, 8, 3, 8, 0, 0, 0, manila),
	}
	var saved *ClockEvent
	svc, mock := newRecorder(t, closingRepo(open, &saved), dayShiftEmployee(), now)

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.TimeOut(context.Background(), 1, TimeOutRequest{
		Purpose:                  PurposeClockOut,
		OfficialOvertimeApproved: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 60, saved.OfficialOvertimeMinutes)
	assert.True(t, saved.OfficialOvertimeApproved)
	assert.Equal(t, 0, saved.UndertimeMinutes)
}

func TestTimeOut_PastEndWithoutApprovalRecordsNothing(t *testing.T) {
	now := time.Date(2026, 8, 3, 18, 0, 0, 0, manila)
	open := &ClockEvent{
		ID:         3,
		EmployeeID: 1,
		Date:       time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC),
		TimeIn:     time.Date(2026, 8, 3, 8, 0, 0, 0, manila),
	}
	var saved *ClockEvent
	svc, mock := newRecorder(t, closingRepo(open, &saved), dayShiftEmployee(), now)

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.TimeOut(context.Background(), 1, TimeOutRequest{Purpose: PurposeClockOut})
	require.NoError(t, err)

	assert.Equal(t, 0, saved.OfficialOvertimeMinutes)
	assert.False(t, saved.OfficialOvertimeApproved)
	assert.Equal(t, 0, saved.UndertimeMinutes)
}

func TestTimeOut_NextDayWithoutApprovalNeedsReview(t *testing.T) {
	now := time.Date(2026, 8, 4, 9, 0, 0, 0, manila)
	open := &ClockEvent{
		ID:         3,
		EmployeeID: 1,
		Date:       time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC),
		TimeIn:     time.Date(2026, 8, 3, 8, 0, 0, 0, manila),
	}
	var saved *ClockEvent
	svc, mock := newRecorder(t, closingRepo(open, &saved), dayShiftEmployee(), now)

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.TimeOut(context.Background(), 1, TimeOutRequest{Purpose: PurposeClockOut})
	require.NoError(t, err)

	assert.True(t, saved.RequiresAdminReview)
	require.NotNil(t, saved.AdminReviewReason)
	assert.Equal(t, "Next-day clock-out without overtime approval", *saved.AdminReviewReason)
	assert.Equal(t, 0, saved.UndertimeMinutes)
	assert.Equal(t, 0, saved.OfficialOvertimeMinutes)
}

func TestTimeOut_NightShiftNextDayIsExemptFromReview(t *testing.T) {
	// 22:00 to 06:00 shift: a 06:10 next-day clock-out without approval
	// is measured against the end advanced one day, not flagged.
	now := time.Date(2026, 8, 4, 6, 10, 0, 0, manila)
	open := &ClockEvent{
		ID:         3,
		EmployeeID: 1,
		Date:       time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC),
		TimeIn:     time.Date(2026, 8, 3, 22, 0, 0, 0, manila),
	}
	var saved *ClockEvent
	svc, mock := newRecorder(t, closingRepo(open, &saved), nightShiftEmployee(), now)

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.TimeOut(context.Background(), 1, TimeOutRequest{Purpose: PurposeClockOut})
	require.NoError(t, err)

	assert.False(t, saved.RequiresAdminReview)
	assert.Equal(t, 0, saved.UndertimeMinutes)
	assert.Equal(t, 0, saved.OfficialOvertimeMinutes)
}

func TestTimeOut_NightShiftEarlyOutIsUndertime(t *testing.T) {
	now := time.Date(2026, 8, 4, 4, 0, 0, 0, manila)
	open := &ClockEvent{
		ID:         3,
		EmployeeID: 1,
		Date:       time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC),
		TimeIn:     time.Date(2026, 8, 3, 22, 0, 0, 0, manila),
	}
	var saved *ClockEvent
	svc, mock := newRecorder(t, closingRepo(open, &saved), nightShiftEmployee(), now)

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.TimeOut(context.Background(), 1, TimeOutRequest{Purpose: PurposeUnapprovedUndertimeOut})
	require.NoError(t, err)

	assert.Equal(t, 120, saved.UndertimeMinutes)
	assert.False(t, saved.RequiresAdminReview)
}

package attendance

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, e *ClockEvent) error
	Update(ctx context.Context, e *ClockEvent) error
	// FindOpenOnDate returns the newest open event for the employee on one
	// calendar date, or (nil, nil).
	FindOpenOnDate(ctx context.Context, employeeID int64, date time.Time) (*ClockEvent, error)
	// FindLatestOpen returns the newest open event regardless of date, or
	// (nil, nil).
	FindLatestOpen(ctx context.Context, employeeID int64) (*ClockEvent, error)
	// HasClockInOn reports whether a first clock-in already exists for the
	// employee on the date.
	HasClockInOn(ctx context.Context, employeeID int64, date time.Time) (bool, error)
	FindByEmployeeAndDateRange(ctx context.Context, employeeID int64, start, end time.Time) ([]ClockEvent, error)
	FindByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) ([]ClockEvent, error)
	FindByID(ctx context.Context, id int64) (*ClockEvent, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, e *ClockEvent) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) Update(ctx context.Context, e *ClockEvent) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) FindOpenOnDate(ctx context.Context, employeeID int64, date time.Time) (*ClockEvent, error) {
	var e ClockEvent
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("date = ?", date.Format("2006-01-02")).
		Where("time_out IS NULL").
		Order("id DESC").
		First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindLatestOpen(ctx context.Context, employeeID int64) (*ClockEvent, error) {
	var e ClockEvent
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("time_out IS NULL").
		Order("id DESC").
		First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) HasClockInOn(ctx context.Context, employeeID int64, date time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&ClockEvent{}).
		Where("employee_id = ?", employeeID).
		Where("date = ?", date.Format("2006-01-02")).
		Where("time_in_purpose = ?", PurposeClockIn).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindByEmployeeAndDateRange(ctx context.Context, employeeID int64, start, end time.Time) ([]ClockEvent, error) {
	var rows []ClockEvent
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("date BETWEEN ? AND ?", start.Format("2006-01-02"), end.Format("2006-01-02")).
		Order("date, time_in").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) ([]ClockEvent, error) {
	var rows []ClockEvent
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("date = ?", date.Format("2006-01-02")).
		Order("time_in").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*ClockEvent, error) {
	var e ClockEvent
	err := r.db.WithContext(ctx).First(&e, id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&ClockEvent{}, id).Error
}

package payroll

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	CreatePeriod(ctx context.Context, p *PayrollPeriod) error
	FindPeriodByID(ctx context.Context, id int64) (*PayrollPeriod, error)
	FindAllPeriods(ctx context.Context) ([]PayrollPeriod, error)
	LockPeriod(ctx context.Context, id int64) error

	// DeleteRecordsForPeriod removes the period's records and their
	// deduction items so a regeneration starts from a clean slate.
	DeleteRecordsForPeriod(ctx context.Context, periodID int64) error
	CreateRecord(ctx context.Context, r *PayrollRecord) error
	CreateItems(ctx context.Context, items []DeductionItem) error
	FindRecordsByPeriod(ctx context.Context, periodID int64) ([]PayrollRecord, error)
	FindItemsByRecord(ctx context.Context, recordID int64) ([]DeductionItem, error)

	// SumRegularPayByYear totals regular pay across every period whose
	// start date falls in the year.
	SumRegularPayByYear(ctx context.Context, employeeID int64, year int) (decimal.Decimal, error)
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

func (r *repository) CreatePeriod(ctx context.Context, p *PayrollPeriod) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindPeriodByID(ctx context.Context, id int64) (*PayrollPeriod, error) {
	var p PayrollPeriod
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindAllPeriods(ctx context.Context) ([]PayrollPeriod, error) {
	var rows []PayrollPeriod
	err := r.db.WithContext(ctx).Order("start_date DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) LockPeriod(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Model(&PayrollPeriod{}).
		Where("id = ?", id).
		Update("is_locked", true).Error
}

func (r *repository) DeleteRecordsForPeriod(ctx context.Context, periodID int64) error {
	err := r.db.WithContext(ctx).
		Where("payroll_record_id IN (?)",
			r.db.Model(&PayrollRecord{}).Select("id").Where("payroll_period_id = ?", periodID),
		).
		Delete(&DeductionItem{}).Error
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Where("payroll_period_id = ?", periodID).
		Delete(&PayrollRecord{}).Error
}

func (r *repository) CreateRecord(ctx context.Context, rec *PayrollRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) CreateItems(ctx context.Context, items []DeductionItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *repository) FindRecordsByPeriod(ctx context.Context, periodID int64) ([]PayrollRecord, error) {
	var rows []PayrollRecord
	err := r.db.WithContext(ctx).
		Where("payroll_period_id = ?", periodID).
		Order("employee_id").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindItemsByRecord(ctx context.Context, recordID int64) ([]DeductionItem, error) {
	var rows []DeductionItem
	err := r.db.WithContext(ctx).
		Where("payroll_record_id = ?", recordID).
		Order("id").
		Find(&rows).Error
	return rows, err
}

func (r *repository) SumRegularPayByYear(ctx context.Context, employeeID int64, year int) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Model(&PayrollRecord{}).
		Select("SUM(payroll_records.regular_pay)").
		Joins("JOIN payroll_periods ON payroll_periods.id = payroll_records.payroll_period_id").
		Where("payroll_records.employee_id = ?", employeeID).
		Where("EXTRACT(YEAR FROM payroll_periods.start_date) = ?", year).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

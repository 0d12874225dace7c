package authcode

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=authcode_repo.go -destination=mock/authcode_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, code *AuthCode) error
	FindAll(ctx context.Context) ([]AuthCode, error)
	FindUsable(ctx context.Context, code, codeType string, asOf time.Time) (*AuthCode, error)
	DecrementUses(ctx context.Context, id int64) error
	Update(ctx context.Context, code *AuthCode) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, code *AuthCode) error {
	return r.db.WithContext(ctx).Create(code).Error
}

func (r *repository) FindAll(ctx context.Context) ([]AuthCode, error) {
	var rows []AuthCode
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error
	return rows, err
}

// FindUsable matches an active, unexpired code with uses left. Returns
// (nil, nil) when no such code exists.
func (r *repository) FindUsable(ctx context.Context, code, codeType string, asOf time.Time) (*AuthCode, error) {
	var row AuthCode
	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		Where("code_type = ?", codeType).
		Where("is_active = ?", true).
		Where("valid_until IS NULL OR valid_until >= ?", asOf.Format("2006-01-02")).
		Where("uses_remaining = ? OR uses_remaining > 0", UnlimitedUses).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// DecrementUses only touches counted codes; unlimited codes stay at -1.
func (r *repository) DecrementUses(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&AuthCode{}).
		Where("id = ? AND uses_remaining > 0", id).
		UpdateColumn("uses_remaining", gorm.Expr("uses_remaining - 1")).Error
}

func (r *repository) Update(ctx context.Context, code *AuthCode) error {
	return r.db.WithContext(ctx).Save(code).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&AuthCode{}, id).Error
}

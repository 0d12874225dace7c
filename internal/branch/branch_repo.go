package branch

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=branch_repo.go -destination=mock/branch_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, b *Branch) error
	FindAll(ctx context.Context) ([]Branch, error)
	FindByID(ctx context.Context, id int64) (*Branch, error)
	FindByName(ctx context.Context, name string) (*Branch, error)
	UpdateGPS(ctx context.Context, id int64, lat, lng, radiusMeters float64) error
	CountEmployees(ctx context.Context, id int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, b *Branch) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Branch, error) {
	var rows []Branch
	err := r.db.WithContext(ctx).Order("name").Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Branch, error) {
	var b Branch
	err := r.db.WithContext(ctx).First(&b, id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// FindByName returns (nil, nil) for an unknown branch; the geofence
// validator treats that the same as a branch without GPS.
func (r *repository) FindByName(ctx context.Context, name string) (*Branch, error) {
	var b Branch
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) UpdateGPS(ctx context.Context, id int64, lat, lng, radiusMeters float64) error {
	return r.db.WithContext(ctx).Model(&Branch{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"gps_latitude":      lat,
			"gps_longitude":     lng,
			"gps_radius_meters": radiusMeters,
		}).Error
}

func (r *repository) CountEmployees(ctx context.Context, id int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("branch_id = ?", id).
		Count(&count).Error
	return count, err
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&Branch{}, id).Error
}

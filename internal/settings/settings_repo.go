package settings

import (
	"context"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=settings_repo.go -destination=mock/settings_repo_mock.go -package=mock
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	GracePeriodMinutes(ctx context.Context) int
	DefaultWorkHours(ctx context.Context) float64
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Get(ctx context.Context, key string) (string, error) {
	var s Setting
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&s).Error
	if err != nil {
		return "", err
	}
	return s.Value, nil
}

func (r *repository) Set(ctx context.Context, key, value string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&Setting{Key: key, Value: value}).Error
}

// GracePeriodMinutes falls back to the default when the row is missing or
// malformed; a broken setting must never block clock-ins.
func (r *repository) GracePeriodMinutes(ctx context.Context) int {
	raw, err := r.Get(ctx, KeyGracePeriod)
	if err != nil {
		return DefaultGracePeriodMinutes
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return DefaultGracePeriodMinutes
	}
	return v
}

func (r *repository) DefaultWorkHours(ctx context.Context) float64 {
	raw, err := r.Get(ctx, KeyWorkHours)
	if err != nil {
		return DefaultWorkHours
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return DefaultWorkHours
	}
	return v
}

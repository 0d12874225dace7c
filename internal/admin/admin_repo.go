package admin

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=admin_repo.go -destination=mock/admin_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, a *Admin) error
	FindByUsername(ctx context.Context, username string) (*Admin, error)
	FindByID(ctx context.Context, id int64) (*Admin, error)
	FindAll(ctx context.Context) ([]Admin, error)
	Update(ctx context.Context, a *Admin) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Admin) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindByUsername(ctx context.Context, username string) (*Admin, error) {
	var a Admin
	err := r.db.WithContext(ctx).
		Where("username = ? AND is_active = ?", username, true).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Admin, error) {
	var a Admin
	err := r.db.WithContext(ctx).First(&a, id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Admin, error) {
	var rows []Admin
	err := r.db.WithContext(ctx).Order("role, username").Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, a *Admin) error {
	return r.db.WithContext(ctx).Save(a).Error
}

// Delete refuses to remove master admins at the query level.
func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND role <> ?", id, "master_admin").
		Delete(&Admin{}).Error
}

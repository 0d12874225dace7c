package branch

import (
	"context"
	"net/http"

	"github.com/3DBotics/attendance/internal/shared/apperror"
)

//go:generate mockgen -source=branch_service.go -destination=mock/branch_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, name, address string) (*Branch, error)
	GetAll(ctx context.Context) ([]Branch, error)
	SetGPS(ctx context.Context, id int64, lat, lng, radiusMeters float64) error
	ValidatePoint(ctx context.Context, branchName string, lat, lng float64) (bool, string, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, name, address string) (*Branch, error) {
	row := &Branch{Name: name, Address: address}
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, apperror.Wrap(err, apperror.CodeConflict, "Branch name already exists", http.StatusConflict)
	}
	return row, nil
}

func (s *service) GetAll(ctx context.Context) ([]Branch, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) SetGPS(ctx context.Context, id int64, lat, lng, radiusMeters float64) error {
	if radiusMeters <= 0 {
		radiusMeters = defaultRadiusMeters
	}
	return s.repo.UpdateGPS(ctx, id, lat, lng, radiusMeters)
}

func (s *service) ValidatePoint(ctx context.Context, branchName string, lat, lng float64) (bool, string, error) {
	b, err := s.repo.FindByName(ctx, branchName)
	if err != nil {
		return false, "", err
	}
	valid, message := ValidateLocation(b, lat, lng)
	return valid, message, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	count, err := s.repo.CountEmployees(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperror.New(apperror.CodeInvalidState, "Cannot delete branch with employees assigned", http.StatusConflict)
	}
	return s.repo.Delete(ctx, id)
}

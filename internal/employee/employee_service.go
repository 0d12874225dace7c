package employee

import (
	"context"
	"errors"

	emperrors "github.com/3DBotics/attendance/internal/employee/errors"
	"github.com/3DBotics/attendance/internal/shared/apperror"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, includeResigned bool) ([]EmployeeResponse, error)
	GetActive(ctx context.Context) ([]EmployeeResponse, error)
	Update(ctx context.Context, id int64, input UpdateEmployeeInput) (EmployeeResponse, error)
	ChangeStatus(ctx context.Context, id int64, status string, reason *string) error
	MarkResigned(ctx context.Context, id int64) error
	VerifyPIN(ctx context.Context, id int64, pin string) (bool, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rate, err := decimal.NewFromString(req.DailyRate)
	if err != nil || rate.IsNegative() {
		return EmployeeResponse{}, apperror.InvalidField("Daily Rate")
	}

	pinHash, err := bcrypt.GenerateFromPassword([]byte(req.PIN), bcrypt.DefaultCost)
	if err != nil {
		return EmployeeResponse{}, err
	}

	row := &Employee{
		EmployeeCode: req.EmployeeCode,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		BranchID:     req.BranchID,
		DailyRate:    rate,
		PINHash:      string(pinHash),
		StartTime:    DefaultStartTime,
		EndTime:      DefaultEndTime,
		Status:       StatusActive,
	}
	if req.StartTime != nil && *req.StartTime != "" {
		row.StartTime = *req.StartTime
	}
	if req.EndTime != nil && *req.EndTime != "" {
		row.EndTime = *req.EndTime
	}

	if err := s.repo.Create(ctx, row); err != nil {
		return EmployeeResponse{}, emperrors.ErrDuplicateCode
	}
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, includeResigned bool) ([]EmployeeResponse, error) {
	rows, err := s.repo.FindAll(ctx, includeResigned)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetActive(ctx context.Context) ([]EmployeeResponse, error) {
	rows, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) Update(ctx context.Context, id int64, input UpdateEmployeeInput) (EmployeeResponse, error) {
	row, err := s.findByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, err
	}

	if input.EmployeeCode != nil {
		row.EmployeeCode = *input.EmployeeCode
	}
	if input.FirstName != nil {
		row.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		row.LastName = *input.LastName
	}
	if input.BranchID != nil {
		row.BranchID = input.BranchID
	}
	if input.DailyRate != nil {
		rate, err := decimal.NewFromString(*input.DailyRate)
		if err != nil || rate.IsNegative() {
			return EmployeeResponse{}, apperror.InvalidField("Daily Rate")
		}
		row.DailyRate = rate
	}
	if input.PIN != nil && *input.PIN != "" {
		pinHash, err := bcrypt.GenerateFromPassword([]byte(*input.PIN), bcrypt.DefaultCost)
		if err != nil {
			return EmployeeResponse{}, err
		}
		row.PINHash = string(pinHash)
	}
	if input.StartTime != nil {
		row.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		row.EndTime = *input.EndTime
	}

	if err := s.repo.Update(ctx, row); err != nil {
		return EmployeeResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) ChangeStatus(ctx context.Context, id int64, status string, reason *string) error {
	if status != StatusActive && status != StatusInactive && status != StatusResigned {
		return emperrors.ErrInvalidStatus
	}
	row, err := s.findByID(ctx, id)
	if err != nil {
		return err
	}
	row.Status = status
	row.StatusReason = reason
	return s.repo.Update(ctx, row)
}

func (s *service) MarkResigned(ctx context.Context, id int64) error {
	return s.ChangeStatus(ctx, id, StatusResigned, nil)
}

func (s *service) VerifyPIN(ctx context.Context, id int64, pin string) (bool, error) {
	row, err := s.findByID(ctx, id)
	if err != nil {
		return false, err
	}
	if bcrypt.CompareHashAndPassword([]byte(row.PINHash), []byte(pin)) != nil {
		return false, nil
	}
	return true, nil
}

func (s *service) findByID(ctx context.Context, id int64) (*Employee, error) {
	row, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, emperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

func mapToListResponse(rows []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res
}

package admin

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/3DBotics/attendance/internal/clock"
	"github.com/3DBotics/attendance/internal/rbac"
	"github.com/3DBotics/attendance/internal/shared/apperror"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenTTL = 12 * time.Hour

var errInvalidCredentials = apperror.New(
	apperror.CodeUnauthorized,
	"Invalid username or password",
	http.StatusUnauthorized,
)

//go:generate mockgen -source=admin_service.go -destination=mock/admin_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, username, password string) (LoginResponse, error)
	Create(ctx context.Context, req CreateAdminRequest) (AdminResponse, error)
	GetAll(ctx context.Context) ([]AdminResponse, error)
	Update(ctx context.Context, id int64, req UpdateAdminRequest) error
	UpdatePassword(ctx context.Context, id int64, newPassword string) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
	clk  clock.Clock
}

func NewService(repo Repository, clk clock.Clock) Service {
	return &service{repo: repo, clk: clk}
}

func (s *service) Login(ctx context.Context, username, password string) (LoginResponse, error) {
	row, err := s.repo.FindByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return LoginResponse{}, errInvalidCredentials
	}
	if err != nil {
		return LoginResponse{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte(password)) != nil {
		return LoginResponse{}, errInvalidCredentials
	}

	now := s.clk.Now()
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(row.ID, 10),
		"role": row.Role,
		"name": row.FullName,
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return LoginResponse{}, err
	}

	return LoginResponse{
		AccessToken: token,
		Admin:       mapToResponse(*row),
	}, nil
}

func (s *service) Create(ctx context.Context, req CreateAdminRequest) (AdminResponse, error) {
	role := req.Role
	if role == "" {
		role = rbac.RoleStaff
	}
	if role != rbac.RoleMasterAdmin && role != rbac.RoleStaff {
		return AdminResponse{}, apperror.InvalidField("Role")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AdminResponse{}, err
	}

	row := &Admin{
		Username:     req.Username,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         role,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		return AdminResponse{}, apperror.New(apperror.CodeConflict, "Username already exists", http.StatusConflict)
	}
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context) ([]AdminResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]AdminResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateAdminRequest) error {
	row, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.ErrNotFound
	}
	if err != nil {
		return err
	}

	if req.FullName != nil {
		row.FullName = *req.FullName
	}
	if req.Role != nil {
		if *req.Role != rbac.RoleMasterAdmin && *req.Role != rbac.RoleStaff {
			return apperror.InvalidField("Role")
		}
		row.Role = *req.Role
	}
	if req.IsActive != nil {
		row.IsActive = *req.IsActive
	}
	return s.repo.Update(ctx, row)
}

func (s *service) UpdatePassword(ctx context.Context, id int64, newPassword string) error {
	row, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.ErrNotFound
	}
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	row.PasswordHash = string(hash)
	return s.repo.Update(ctx, row)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

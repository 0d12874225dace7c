package authcode

import (
	"context"
	"crypto/rand"
	"math/big"

	"github.com/3DBotics/attendance/internal/clock"
)

// VerifyResult is what the kiosk needs to turn a presented code into an
// approval: the boolean plus the optional cap on approvable hours.
type VerifyResult struct {
	Approved       bool
	AllowableHours float64
}

//go:generate mockgen -source=authcode_service.go -destination=mock/authcode_service_mock.go -package=mock
type Service interface {
	Verify(ctx context.Context, code, codeType string) (VerifyResult, error)
	GenerateCode(length int) (string, error)
}

type service struct {
	repo Repository
	clk  clock.Clock
}

func NewService(repo Repository, clk clock.Clock) Service {
	return &service{repo: repo, clk: clk}
}

// Verify burns one use of a counted code. An unknown, expired or exhausted
// code is not an error; it simply does not approve anything.
func (s *service) Verify(ctx context.Context, code, codeType string) (VerifyResult, error) {
	if !ValidType(codeType) {
		return VerifyResult{}, nil
	}

	row, err := s.repo.FindUsable(ctx, code, codeType, s.clk.Now())
	if err != nil {
		return VerifyResult{}, err
	}
	if row == nil {
		return VerifyResult{}, nil
	}

	if row.UsesRemaining > 0 {
		if err := s.repo.DecrementUses(ctx, row.ID); err != nil {
			return VerifyResult{}, err
		}
	}

	return VerifyResult{Approved: true, AllowableHours: row.AllowableHours}, nil
}

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func (s *service) GenerateCode(length int) (string, error) {
	if length <= 0 {
		length = 6
	}
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
		if err != nil {
			return "", err
		}
		out[i] = codeAlphabet[n.Int64()]
	}
	return string(out), nil
}

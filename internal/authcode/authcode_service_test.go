package authcode

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3DBotics/attendance/internal/clock"
)

type fakeRepo struct {
	findUsableFn func(ctx context.Context, code, codeType string, asOf time.Time) (*AuthCode, error)
	decremented  []int64
}

func (f *fakeRepo) Create(ctx context.Context, code *AuthCode) error { return nil }
func (f *fakeRepo) FindAll(ctx context.Context) ([]AuthCode, error)  { return nil, nil }
func (f *fakeRepo) FindUsable(ctx context.Context, code, codeType string, asOf time.Time) (*AuthCode, error) {
	return f.findUsableFn(ctx, code, codeType, asOf)
}
func (f *fakeRepo) DecrementUses(ctx context.Context, id int64) error {
	f.decremented = append(f.decremented, id)
	return nil
}
func (f *fakeRepo) Update(ctx context.Context, code *AuthCode) error { return nil }
func (f *fakeRepo) Delete(ctx context.Context, id int64) error       { return nil }

func usableRepo(row *AuthCode) *fakeRepo {
	return &fakeRepo{
		findUsableFn: func(ctx context.Context, code, codeType string, asOf time.Time) (*AuthCode, error) {
			return row, nil
		},
	}
}

func TestVerify_CountedCodeApprovesAndBurnsOneUse(t *testing.T) {
	repo := usableRepo(&AuthCode{ID: 4, Code: "OT1234", CodeType: TypeOfficialOvertime, UsesRemaining: 3, AllowableHours: 2})
	svc := NewService(repo, clock.Fixed{T: time.Now()})

	res, err := svc.Verify(context.Background(), "OT1234", TypeOfficialOvertime)
	require.NoError(t, err)
	assert.True(t, res.Approved)
	assert.Equal(t, 2.0, res.AllowableHours)
	assert.Equal(t, []int64{4}, repo.decremented)
}

func TestVerify_UnlimitedCodeIsNeverDecremented(t *testing.T) {
	repo := usableRepo(&AuthCode{ID: 9, Code: "ES0001", CodeType: TypeEarlyStart, UsesRemaining: UnlimitedUses})
	svc := NewService(repo, clock.Fixed{T: time.Now()})

	res, err := svc.Verify(context.Background(), "ES0001", TypeEarlyStart)
	require.NoError(t, err)
	assert.True(t, res.Approved)
	assert.Empty(t, repo.decremented)
}

func TestVerify_UnknownOrSpentCodeDoesNotApprove(t *testing.T) {
	// The repository filters out expired, exhausted and inactive codes, so
	// all of them surface here as a nil row.
	repo := usableRepo(nil)
	svc := NewService(repo, clock.Fixed{T: time.Now()})

	res, err := svc.Verify(context.Background(), "NOPE99", TypeEarlyStart)
	require.NoError(t, err)
	assert.False(t, res.Approved)
	assert.Empty(t, repo.decremented)
}

func TestVerify_InvalidTypeDoesNotApprove(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, clock.Fixed{T: time.Now()})

	res, err := svc.Verify(context.Background(), "OT1234", "lunch_pass")
	require.NoError(t, err)
	assert.False(t, res.Approved)
}

func TestGenerateCode(t *testing.T) {
	svc := NewService(&fakeRepo{}, clock.Fixed{T: time.Now()})

	code, err := svc.GenerateCode(8)
	require.NoError(t, err)
	assert.Len(t, code, 8)
	for _, r := range code {
		assert.Contains(t, codeAlphabet, string(r))
	}

	short, err := svc.GenerateCode(0)
	require.NoError(t, err)
	assert.Len(t, short, 6)
}

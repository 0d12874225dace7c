package statutory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSSS_MidTableSalary(t *testing.T) {
	// 25,000 maps to credit 25,000: EE 5% = 1,250.00; ER 10% + 30 EC.
	shares := SSS(money("25000"))
	assert.True(t, shares.Employee.Equal(money("1250")), shares.Employee.String())
	assert.True(t, shares.Employer.Equal(money("2530")), shares.Employer.String())
}

func TestSSS_FloorAndCeiling(t *testing.T) {
	low := SSS(money("3000"))
	assert.True(t, low.Employee.Equal(money("250")), low.Employee.String())
	assert.True(t, low.Employer.Equal(money("510")), low.Employer.String())

	high := SSS(money("120000"))
	assert.True(t, high.Employee.Equal(money("1750")), high.Employee.String())
	assert.True(t, high.Employer.Equal(money("3530")), high.Employer.String())
}

func TestSSS_ECStepsAtCreditThreshold(t *testing.T) {
	// Credit 14,500 keeps the low EC amount.
	below := SSS(money("14500"))
	assert.True(t, below.Employer.Equal(money("1460")), below.Employer.String())

	// Credit 15,000 switches to the high EC amount.
	at := SSS(money("14750"))
	assert.True(t, at.Employer.Equal(money("1530")), at.Employer.String())
}

func TestSSS_BandBoundaries(t *testing.T) {
	assert.EqualValues(t, 5000, sssSalaryCredit(money("5249.99")))
	assert.EqualValues(t, 5500, sssSalaryCredit(money("5250")))
	assert.EqualValues(t, 35000, sssSalaryCredit(money("34750")))
}

func TestPhilHealth_ClampsToFloor(t *testing.T) {
	// 5,000 is lifted to the 10,000 floor: total 500 split evenly.
	shares := PhilHealth(money("5000"))
	assert.True(t, shares.Employee.Equal(money("250")), shares.Employee.String())
	assert.True(t, shares.Employer.Equal(money("250")), shares.Employer.String())
}

func TestPhilHealth_ClampsToCeiling(t *testing.T) {
	shares := PhilHealth(money("250000"))
	assert.True(t, shares.Employee.Equal(money("2500")), shares.Employee.String())
	assert.True(t, shares.Employer.Equal(money("2500")), shares.Employer.String())
}

func TestPhilHealth_MidRange(t *testing.T) {
	shares := PhilHealth(money("25000"))
	assert.True(t, shares.Employee.Equal(money("625")), shares.Employee.String())
	assert.True(t, shares.Employer.Equal(money("625")), shares.Employer.String())
}

func TestPagIBIG_CapsAboveThreshold(t *testing.T) {
	// 20,000 at 2% would be 400 per side; both cap at 200.
	shares := PagIBIG(money("20000"))
	assert.True(t, shares.Employee.Equal(money("200")), shares.Employee.String())
	assert.True(t, shares.Employer.Equal(money("200")), shares.Employer.String())
}

func TestPagIBIG_LowTierRates(t *testing.T) {
	shares := PagIBIG(money("1500"))
	assert.True(t, shares.Employee.Equal(money("15")), shares.Employee.String())
	assert.True(t, shares.Employer.Equal(money("30")), shares.Employer.String())
}

func TestPagIBIG_UncappedMidRange(t *testing.T) {
	shares := PagIBIG(money("8000"))
	assert.True(t, shares.Employee.Equal(money("160")), shares.Employee.String())
	assert.True(t, shares.Employer.Equal(money("160")), shares.Employer.String())
}

func TestBreakdown_ProrateRoundsAfterScaling(t *testing.T) {
	b := Breakdown{
		SSS:        Shares{Employee: money("1250"), Employer: money("2530")},
		PhilHealth: Shares{Employee: money("625.25"), Employer: money("625.25")},
		PagIBIG:    Shares{Employee: money("200"), Employer: money("200")},
	}

	half := b.Prorate(money("0.5"))
	assert.True(t, half.SSS.Employee.Equal(money("625")), half.SSS.Employee.String())
	assert.True(t, half.PhilHealth.Employee.Equal(money("312.63")), half.PhilHealth.Employee.String())

	zero := b.Prorate(decimal.Zero)
	assert.True(t, zero.TotalEmployee().IsZero())
}

func TestBreakdown_TotalEmployee(t *testing.T) {
	b := Compute(money("25000"))
	// SSS 1,250 + PhilHealth 625 + Pag-IBIG 200.
	assert.True(t, b.TotalEmployee().Equal(money("2075")), b.TotalEmployee().String())
}

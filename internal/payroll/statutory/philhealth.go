package statutory

import "github.com/shopspring/decimal"

// 2025 PhilHealth premium: 5% of the monthly salary clamped into the
// income floor/ceiling, split evenly between employee and employer.
var (
	philHealthFloor   = decimal.NewFromInt(10000)
	philHealthCeiling = decimal.NewFromInt(100000)
	philHealthRate    = decimal.RequireFromString("0.05")
)

func PhilHealth(monthlySalary decimal.Decimal) Shares {
	base := monthlySalary
	if base.LessThan(philHealthFloor) {
		base = philHealthFloor
	}
	if base.GreaterThan(philHealthCeiling) {
		base = philHealthCeiling
	}

	half := base.Mul(philHealthRate).Div(decimal.NewFromInt(2)).Round(2)
	return Shares{Employee: half, Employer: half}
}

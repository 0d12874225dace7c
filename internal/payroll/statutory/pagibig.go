package statutory

import "github.com/shopspring/decimal"

// 2025 Pag-IBIG contribution. Salaries at or below the 1,500 threshold
// pay a reduced employee rate; the employer rate is flat. Each share is
// capped independently.
var (
	pagIBIGThreshold = decimal.NewFromInt(1500)

	pagIBIGLowEERate = decimal.RequireFromString("0.01")
	pagIBIGEERate    = decimal.RequireFromString("0.02")
	pagIBIGERRate    = decimal.RequireFromString("0.02")

	pagIBIGLowEECap = decimal.NewFromInt(100)
	pagIBIGEECap    = decimal.NewFromInt(200)
	pagIBIGERCap    = decimal.NewFromInt(200)
)

func PagIBIG(monthlySalary decimal.Decimal) Shares {
	eeRate, eeCap := pagIBIGLowEERate, pagIBIGLowEECap
	if monthlySalary.GreaterThan(pagIBIGThreshold) {
		eeRate, eeCap = pagIBIGEERate, pagIBIGEECap
	}

	return Shares{
		Employee: decimal.Min(monthlySalary.Mul(eeRate), eeCap).Round(2),
		Employer: decimal.Min(monthlySalary.Mul(pagIBIGERRate), pagIBIGERCap).Round(2),
	}
}

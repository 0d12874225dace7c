// Package statutory maps a monthly-equivalent salary to the 2025
// Philippine contribution schemes. Every function is pure and returns
// peso amounts rounded to two decimals.
package statutory

import "github.com/shopspring/decimal"

// Shares carries both sides of one contribution scheme. The employer
// share is informational and never deducted from net pay.
type Shares struct {
	Employee decimal.Decimal
	Employer decimal.Decimal
}

// Breakdown is the full set of schemes for one salary.
type Breakdown struct {
	SSS        Shares
	PhilHealth Shares
	PagIBIG    Shares
}

func Compute(monthlySalary decimal.Decimal) Breakdown {
	return Breakdown{
		SSS:        SSS(monthlySalary),
		PhilHealth: PhilHealth(monthlySalary),
		PagIBIG:    PagIBIG(monthlySalary),
	}
}

// TotalEmployee sums the employee-side deductions across schemes.
func (b Breakdown) TotalEmployee() decimal.Decimal {
	return b.SSS.Employee.Add(b.PhilHealth.Employee).Add(b.PagIBIG.Employee)
}

// Prorate scales every share by the period factor, rounding each share
// to two decimals after scaling.
func (b Breakdown) Prorate(factor decimal.Decimal) Breakdown {
	scale := func(s Shares) Shares {
		return Shares{
			Employee: s.Employee.Mul(factor).Round(2),
			Employer: s.Employer.Mul(factor).Round(2),
		}
	}
	return Breakdown{
		SSS:        scale(b.SSS),
		PhilHealth: scale(b.PhilHealth),
		PagIBIG:    scale(b.PagIBIG),
	}
}

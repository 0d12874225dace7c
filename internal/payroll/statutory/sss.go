package statutory

import (
	"sort"

	"github.com/shopspring/decimal"
)

// 2025 SSS schedule per Circular 2024-006. Total 15% of the monthly
// salary credit: 5% employee, 10% employer, plus the employer-only EC
// amount which steps up once the credit reaches 15,000.
const (
	sssEmployeeRate = "0.05"
	sssEmployerRate = "0.10"

	sssECLow       = 10
	sssECHigh      = 30
	sssECThreshold = 15000
)

// sssBracket is one band of the schedule: salaries at or above lower
// (and below the next band's lower) map to the salary credit.
type sssBracket struct {
	lower  float64
	credit int64
}

// Bands ascend in 500-peso steps; the first and last are open-ended.
var sssBrackets = []sssBracket{
	{0, 5000},
	{5000, 5000},
	{5250, 5500},
	{5750, 6000},
	{6250, 6500},
	{6750, 7000},
	{7250, 7500},
	{7750, 8000},
	{8250, 8500},
	{8750, 9000},
	{9250, 9500},
	{9750, 10000},
	{10250, 10500},
	{10750, 11000},
	{11250, 11500},
	{11750, 12000},
	{12250, 12500},
	{12750, 13000},
	{13250, 13500},
	{13750, 14000},
	{14250, 14500},
	{14750, 15000},
	{15250, 15500},
	{15750, 16000},
	{16250, 16500},
	{16750, 17000},
	{17250, 17500},
	{17750, 18000},
	{18250, 18500},
	{18750, 19000},
	{19250, 19500},
	{19750, 20000},
	{20250, 20500},
	{20750, 21000},
	{21250, 21500},
	{21750, 22000},
	{22250, 22500},
	{22750, 23000},
	{23250, 23500},
	{23750, 24000},
	{24250, 24500},
	{24750, 25000},
	{25250, 25500},
	{25750, 26000},
	{26250, 26500},
	{26750, 27000},
	{27250, 27500},
	{27750, 28000},
	{28250, 28500},
	{28750, 29000},
	{29250, 29500},
	{29750, 30000},
	{30250, 30500},
	{30750, 31000},
	{31250, 31500},
	{31750, 32000},
	{32250, 32500},
	{32750, 33000},
	{33250, 33500},
	{33750, 34000},
	{34250, 34500},
	{34750, 35000},
}

func sssSalaryCredit(monthlySalary decimal.Decimal) int64 {
	salary := monthlySalary.InexactFloat64()
	// First band whose lower bound exceeds the salary; the band before
	// it holds the salary.
	i := sort.Search(len(sssBrackets), func(i int) bool {
		return sssBrackets[i].lower > salary
	})
	if i == 0 {
		return sssBrackets[0].credit
	}
	return sssBrackets[i-1].credit
}

func SSS(monthlySalary decimal.Decimal) Shares {
	credit := decimal.NewFromInt(sssSalaryCredit(monthlySalary))

	ec := decimal.NewFromInt(sssECLow)
	if credit.GreaterThanOrEqual(decimal.NewFromInt(sssECThreshold)) {
		ec = decimal.NewFromInt(sssECHigh)
	}

	return Shares{
		Employee: credit.Mul(decimal.RequireFromString(sssEmployeeRate)).Round(2),
		Employer: credit.Mul(decimal.RequireFromString(sssEmployerRate)).Add(ec).Round(2),
	}
}

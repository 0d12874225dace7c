package payroll

type CreatePeriodRequest struct {
	Name      string `json:"name" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

type PeriodResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	IsLocked  bool   `json:"is_locked"`
}

type RecordResponse struct {
	ID                 int64  `json:"id"`
	EmployeeID         int64  `json:"employee_id"`
	LockedDailyRate    string `json:"locked_daily_rate"`
	DaysWorked         string `json:"days_worked"`
	RegularPay         string `json:"regular_pay"`
	OvertimePay        string `json:"overtime_pay"`
	EarlyStartPay      string `json:"early_start_pay"`
	HolidayPay         string `json:"holiday_pay"`
	TardinessDeduction string `json:"tardiness_deduction"`
	UndertimeDeduction string `json:"undertime_deduction"`
	GrossPay           string `json:"gross_pay"`
	TotalDeductions    string `json:"total_deductions"`
	NetPay             string `json:"net_pay"`
}

type DeductionItemResponse struct {
	Name           string `json:"name"`
	EmployeeAmount string `json:"employee_amount"`
	EmployerAmount string `json:"employer_amount"`
}

func mapPeriod(p PayrollPeriod) PeriodResponse {
	return PeriodResponse{
		ID:        p.ID,
		Name:      p.Name,
		StartDate: p.StartDate.Format("2006-01-02"),
		EndDate:   p.EndDate.Format("2006-01-02"),
		IsLocked:  p.IsLocked,
	}
}

func mapRecord(r PayrollRecord) RecordResponse {
	return RecordResponse{
		ID:                 r.ID,
		EmployeeID:         r.EmployeeID,
		LockedDailyRate:    r.LockedDailyRate.StringFixed(2),
		DaysWorked:         r.DaysWorked.StringFixed(2),
		RegularPay:         r.RegularPay.StringFixed(2),
		OvertimePay:        r.OvertimePay.StringFixed(2),
		EarlyStartPay:      r.EarlyStartPay.StringFixed(2),
		HolidayPay:         r.HolidayPay.StringFixed(2),
		TardinessDeduction: r.TardinessDeduction.StringFixed(2),
		UndertimeDeduction: r.UndertimeDeduction.StringFixed(2),
		GrossPay:           r.GrossPay.StringFixed(2),
		TotalDeductions:    r.TotalDeductions.StringFixed(2),
		NetPay:             r.NetPay.StringFixed(2),
	}
}

func mapItem(i DeductionItem) DeductionItemResponse {
	return DeductionItemResponse{
		Name:           i.Name,
		EmployeeAmount: i.EmployeeAmount.StringFixed(2),
		EmployerAmount: i.EmployerAmount.StringFixed(2),
	}
}

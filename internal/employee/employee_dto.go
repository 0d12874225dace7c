package employee

type CreateEmployeeRequest struct {
	EmployeeCode string  `json:"employee_code" binding:"required"`
	FirstName    string  `json:"first_name" binding:"required"`
	LastName     string  `json:"last_name" binding:"required"`
	BranchID     *int64  `json:"branch_id"`
	DailyRate    string  `json:"daily_rate" binding:"required"`
	PIN          string  `json:"pin" binding:"required,len=4"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
}

// UpdateEmployeeInput carries the mutable fields; each is independently
// optional, nil meaning "leave unchanged".
type UpdateEmployeeInput struct {
	EmployeeCode *string `json:"employee_code"`
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	BranchID     *int64  `json:"branch_id"`
	DailyRate    *string `json:"daily_rate"`
	PIN          *string `json:"pin"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
}

type ChangeStatusRequest struct {
	Status string  `json:"status" binding:"required"`
	Reason *string `json:"reason"`
}

type VerifyPINRequest struct {
	EmployeeID int64  `json:"employee_id" binding:"required"`
	PIN        string `json:"pin" binding:"required"`
}

type EmployeeResponse struct {
	ID           int64   `json:"id"`
	EmployeeCode string  `json:"employee_code"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	BranchID     *int64  `json:"branch_id,omitempty"`
	DailyRate    string  `json:"daily_rate"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	Status       string  `json:"status"`
	StatusReason *string `json:"status_reason,omitempty"`
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		EmployeeCode: e.EmployeeCode,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		BranchID:     e.BranchID,
		DailyRate:    e.DailyRate.StringFixed(2),
		StartTime:    e.StartTime,
		EndTime:      e.EndTime,
		Status:       e.Status,
		StatusReason: e.StatusReason,
	}
}

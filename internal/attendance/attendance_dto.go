package attendance

import "time"

type TimeInRequest struct {
	Purpose            string `json:"purpose"`
	EarlyStartApproved bool   `json:"early_start_approved"`
}

type TimeOutRequest struct {
	Purpose                  string `json:"purpose"`
	OfficialOvertimeApproved bool   `json:"official_overtime_approved"`
}

type ClockEventResponse struct {
	ID         int64  `json:"id"`
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date"`
	TimeIn     string `json:"time_in"`
	TimeOut    *string `json:"time_out,omitempty"`

	TimeInPurpose  string  `json:"time_in_purpose"`
	TimeOutPurpose *string `json:"time_out_purpose,omitempty"`

	TardinessMinutes         int  `json:"tardiness_minutes"`
	UndertimeMinutes         int  `json:"undertime_minutes"`
	EarlyStartMinutes        int  `json:"early_start_minutes"`
	EarlyStartApproved       bool `json:"early_start_approved"`
	OfficialOvertimeMinutes  int  `json:"official_overtime_minutes"`
	OfficialOvertimeApproved bool `json:"official_overtime_approved"`

	IsHoliday   bool    `json:"is_holiday"`
	HolidayKind *string `json:"holiday_kind,omitempty"`

	RequiresAdminReview bool    `json:"requires_admin_review"`
	AdminReviewReason   *string `json:"admin_review_reason,omitempty"`

	Message string `json:"message,omitempty"`
}

func mapToResponse(e ClockEvent, message string) ClockEventResponse {
	resp := ClockEventResponse{
		ID:                       e.ID,
		EmployeeID:               e.EmployeeID,
		Date:                     e.Date.Format("2006-01-02"),
		TimeIn:                   e.TimeIn.Format(time.RFC3339),
		TimeInPurpose:            e.TimeInPurpose,
		TimeOutPurpose:           e.TimeOutPurpose,
		TardinessMinutes:         e.TardinessMinutes,
		UndertimeMinutes:         e.UndertimeMinutes,
		EarlyStartMinutes:        e.EarlyStartMinutes,
		EarlyStartApproved:       e.EarlyStartApproved,
		OfficialOvertimeMinutes:  e.OfficialOvertimeMinutes,
		OfficialOvertimeApproved: e.OfficialOvertimeApproved,
		IsHoliday:                e.IsHoliday,
		HolidayKind:              e.HolidayKind,
		RequiresAdminReview:      e.RequiresAdminReview,
		AdminReviewReason:        e.AdminReviewReason,
		Message:                  message,
	}
	if e.TimeOut != nil {
		v := e.TimeOut.Format(time.RFC3339)
		resp.TimeOut = &v
	}
	return resp
}

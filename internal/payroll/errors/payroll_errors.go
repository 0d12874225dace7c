package errors

import (
	"net/http"

	"github.com/3DBotics/attendance/internal/shared/apperror"
)

var (
	ErrPeriodNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll period not found",
		http.StatusNotFound,
	)

	// ErrPeriodLocked rejects regeneration of a finalized period with no
	// mutation at all.
	ErrPeriodLocked = apperror.New(
		apperror.CodeConflict,
		"Payroll period is locked and cannot be regenerated",
		http.StatusConflict,
	)
)

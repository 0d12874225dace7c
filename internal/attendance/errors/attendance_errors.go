package errors

import (
	"net/http"

	"github.com/3DBotics/attendance/internal/shared/apperror"
)

var (
	// ErrDuplicateOpenRecord rejects a time-in while an event is still open.
	ErrDuplicateOpenRecord = apperror.New(
		apperror.CodeConflict,
		"You have an open attendance record. Please clock out first.",
		http.StatusConflict,
	)

	// ErrNoOpenRecord rejects a time-out with nothing to close.
	ErrNoOpenRecord = apperror.New(
		apperror.CodeInvalidState,
		"No open attendance record. Please clock in first.",
		http.StatusConflict,
	)

	ErrUnknownPurpose = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown attendance purpose",
		http.StatusBadRequest,
	)
)

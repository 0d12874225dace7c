package attendance

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/3DBotics/attendance/internal/authcode"
	"github.com/3DBotics/attendance/internal/shared/apperror"
	"github.com/3DBotics/attendance/internal/shared/response"
)

type recordRequest struct {
	EmployeeID int64  `json:"employee_id" binding:"required"`
	Purpose    string `json:"purpose" binding:"required"`
	AuthCode   string `json:"auth_code"`
	// Photo is accepted from the kiosk but not persisted.
	Photo string `json:"photo"`
}

type Handler struct {
	svc   Service
	codes authcode.Service
}

func NewHandler(svc Service, codes authcode.Service) *Handler {
	return &Handler{svc: svc, codes: codes}
}

func (h *Handler) TimeIn(c *gin.Context) {
	var req recordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	in := TimeInRequest{Purpose: req.Purpose}
	if req.AuthCode != "" {
		res, err := h.codes.Verify(c.Request.Context(), req.AuthCode, authcode.TypeEarlyStart)
		if err != nil {
			writeError(c, err)
			return
		}
		in.EarlyStartApproved = res.Approved
	}

	resp, err := h.svc.TimeIn(c.Request.Context(), req.EmployeeID, in)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) TimeOut(c *gin.Context) {
	var req recordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	out := TimeOutRequest{Purpose: req.Purpose}
	if req.AuthCode != "" {
		res, err := h.codes.Verify(c.Request.Context(), req.AuthCode, authcode.TypeOfficialOvertime)
		if err != nil {
			writeError(c, err)
			return
		}
		out.OfficialOvertimeApproved = res.Approved
	}

	resp, err := h.svc.TimeOut(c.Request.Context(), req.EmployeeID, out)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) TodayStatus(c *gin.Context) {
	employeeID, err := strconv.ParseInt(c.Param("employeeID"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid employee id", nil)
		return
	}

	events, hasOpen, err := h.svc.TodayEvents(c.Request.Context(), employeeID)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"events": events, "has_open": hasOpen}, nil)
}

func (h *Handler) ListByRange(c *gin.Context) {
	employeeID, err := strconv.ParseInt(c.Param("employeeID"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid employee id", nil)
		return
	}
	start, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid start date, expected YYYY-MM-DD", nil)
		return
	}
	end, err := time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid end date, expected YYYY-MM-DD", nil)
		return
	}

	events, err := h.svc.ListByDateRange(c.Request.Context(), employeeID, start, end)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, events, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid attendance id", nil)
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

package payroll

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/3DBotics/attendance/internal/shared/apperror"
	"github.com/3DBotics/attendance/internal/shared/response"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) CreatePeriod(c *gin.Context) {
	var req CreatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid start date, expected YYYY-MM-DD", nil)
		return
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid end date, expected YYYY-MM-DD", nil)
		return
	}
	if end.Before(start) {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "End date must not precede start date", nil)
		return
	}

	p, err := h.svc.CreatePeriod(c.Request.Context(), req.Name, start, end)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, mapPeriod(*p), nil)
}

func (h *Handler) ListPeriods(c *gin.Context) {
	periods, err := h.svc.ListPeriods(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	out := make([]PeriodResponse, len(periods))
	for i, p := range periods {
		out[i] = mapPeriod(p)
	}
	response.Success(c, http.StatusOK, out, nil)
}

func (h *Handler) Generate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid period id", nil)
		return
	}

	count, err := h.svc.GenerateForPeriod(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"period_id": id, "records": count}, nil)
}

func (h *Handler) Lock(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid period id", nil)
		return
	}
	if err := h.svc.LockPeriod(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"locked": true}, nil)
}

func (h *Handler) Records(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid period id", nil)
		return
	}
	records, err := h.svc.RecordsForPeriod(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	out := make([]RecordResponse, len(records))
	for i, r := range records {
		out[i] = mapRecord(r)
	}
	response.Success(c, http.StatusOK, out, nil)
}

func (h *Handler) RecordItems(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("recordID"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid record id", nil)
		return
	}
	items, err := h.svc.ItemsForRecord(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	out := make([]DeductionItemResponse, len(items))
	for i, item := range items {
		out[i] = mapItem(item)
	}
	response.Success(c, http.StatusOK, out, nil)
}

func (h *Handler) ThirteenthMonth(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid year", nil)
		return
	}
	entries, err := h.svc.ThirteenthMonth(c.Request.Context(), year)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, entries, nil)
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

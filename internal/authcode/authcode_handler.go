package authcode

import (
	"net/http"
	"strconv"
	"time"

	"github.com/3DBotics/attendance/internal/shared/apperror"
	"github.com/3DBotics/attendance/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type CreateAuthCodeRequest struct {
	Code           string  `json:"code" binding:"required"`
	CodeType       string  `json:"code_type" binding:"required"`
	Description    *string `json:"description"`
	UsesRemaining  *int    `json:"uses_remaining"`
	ValidUntil     *string `json:"valid_until"`
	AllowableHours float64 `json:"allowable_hours"`
}

type VerifyAuthCodeRequest struct {
	Code     string `json:"code" binding:"required"`
	CodeType string `json:"code_type" binding:"required"`
}

type Handler struct {
	service Service
	repo    Repository
}

func NewHandler(service Service, repo Repository) *Handler {
	return &Handler{service: service, repo: repo}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateAuthCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	if !ValidType(req.CodeType) {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Unknown code type", nil)
		return
	}

	row := &AuthCode{
		Code:           req.Code,
		CodeType:       req.CodeType,
		Description:    req.Description,
		UsesRemaining:  UnlimitedUses,
		AllowableHours: req.AllowableHours,
		IsActive:       true,
	}
	if req.UsesRemaining != nil {
		row.UsesRemaining = *req.UsesRemaining
	}
	if req.ValidUntil != nil && *req.ValidUntil != "" {
		t, err := time.Parse("2006-01-02", *req.ValidUntil)
		if err != nil {
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid valid_until, expected YYYY-MM-DD", nil)
			return
		}
		row.ValidUntil = &t
	}
	if adminID, err := strconv.ParseInt(c.GetString("admin_id"), 10, 64); err == nil {
		row.CreatedBy = &adminID
	}

	if err := h.repo.Create(c.Request.Context(), row); err != nil {
		response.Error(c, http.StatusConflict, apperror.CodeConflict, "Code already exists", nil)
		return
	}
	response.Success(c, http.StatusCreated, row, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	rows, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows, nil)
}

func (h *Handler) Generate(c *gin.Context) {
	code, err := h.service.GenerateCode(6)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"code": code}, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid code id", nil)
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

// Verify is the kiosk endpoint that turns a presented code into an
// approval flag before time-in/time-out is recorded.
func (h *Handler) Verify(c *gin.Context) {
	var req VerifyAuthCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	result, err := h.service.Verify(c.Request.Context(), req.Code, req.CodeType)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if !result.Approved {
		response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Invalid or expired code", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"approved":        true,
		"allowable_hours": result.AllowableHours,
	}, nil)
}

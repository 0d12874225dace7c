package settings

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/3DBotics/attendance/internal/shared/apperror"
	"github.com/3DBotics/attendance/internal/shared/response"
)

type UpdateSettingsRequest struct {
	GracePeriodMinutes *int     `json:"grace_period_minutes"`
	WorkHours          *float64 `json:"work_hours"`
}

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	response.Success(c, http.StatusOK, gin.H{
		"grace_period_minutes": h.repo.GracePeriodMinutes(ctx),
		"work_hours":           h.repo.DefaultWorkHours(ctx),
	}, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	ctx := c.Request.Context()
	if req.GracePeriodMinutes != nil {
		if *req.GracePeriodMinutes < 0 {
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Grace period must not be negative", nil)
			return
		}
		if err := h.repo.Set(ctx, KeyGracePeriod, strconv.Itoa(*req.GracePeriodMinutes)); err != nil {
			httpErr := apperror.ToHTTP(err)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
			return
		}
	}
	if req.WorkHours != nil {
		if *req.WorkHours <= 0 {
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Work hours must be positive", nil)
			return
		}
		if err := h.repo.Set(ctx, KeyWorkHours, strconv.FormatFloat(*req.WorkHours, 'f', -1, 64)); err != nil {
			httpErr := apperror.ToHTTP(err)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
			return
		}
	}

	h.Get(c)
}

package branch

import (
	"net/http"
	"strconv"

	"github.com/3DBotics/attendance/internal/shared/apperror"
	"github.com/3DBotics/attendance/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type CreateBranchRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

type SetGPSRequest struct {
	Latitude     float64 `json:"latitude" binding:"required"`
	Longitude    float64 `json:"longitude" binding:"required"`
	RadiusMeters float64 `json:"radius_meters"`
}

type ValidateLocationRequest struct {
	Branch    string   `json:"branch" binding:"required"`
	Latitude  *float64 `json:"lat"`
	Longitude *float64 `json:"lng"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	row, err := h.service.Create(c.Request.Context(), req.Name, req.Address)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, row, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	rows, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows, nil)
}

func (h *Handler) SetGPS(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid branch id", nil)
		return
	}
	var req SetGPSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	if err := h.service.SetGPS(c.Request.Context(), id, req.Latitude, req.Longitude, req.RadiusMeters); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": true}, nil)
}

// ValidateLocation is called by the kiosk before recording attendance. A
// missing GPS fix is accepted; the recorder is the authority on everything
// else.
func (h *Handler) ValidateLocation(c *gin.Context) {
	var req ValidateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	if req.Latitude == nil || req.Longitude == nil {
		response.Success(c, http.StatusOK, gin.H{"valid": true, "message": "GPS not available"}, nil)
		return
	}

	valid, message, err := h.service.ValidatePoint(c.Request.Context(), req.Branch, *req.Latitude, *req.Longitude)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"valid": valid, "message": message}, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid branch id", nil)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

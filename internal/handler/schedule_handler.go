package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edusync/scheduler-api/internal/service"
	appErrors "github.com/edusync/scheduler-api/pkg/errors"
	"github.com/edusync/scheduler-api/pkg/response"
)

// ScheduleHandler manages schedule endpoints.
type ScheduleHandler struct {
	service *service.ScheduleService
}

// NewScheduleHandler constructs handler.
func NewScheduleHandler(svc *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: svc}
}

// List godoc
// @Summary List schedules
// @Tags Schedules
// @Produce json
// @Success 200 {object} response.ListEnvelope
// @Router /schedules [get]
func (h *ScheduleHandler) List(c *gin.Context) {
	schedules, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, schedules, len(schedules))
}

// Create godoc
// @Summary Create schedule
// @Tags Schedules
// @Accept json
// @Produce json
// @Param payload body service.CreateScheduleRequest true "Schedule payload"
// @Success 201 {object} models.Schedule
// @Failure 409 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /schedules [post]
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req service.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	schedule, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, schedule)
}

// Export godoc
// @Summary Export schedules
// @Tags Schedules
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf" default(csv)
// @Success 200
// @Router /schedules/export [get]
func (h *ScheduleHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	payload, contentType, err := h.service.Export(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	filename := fmt.Sprintf("schedules-%s.%s", time.Now().UTC().Format("20060102"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, payload)
}

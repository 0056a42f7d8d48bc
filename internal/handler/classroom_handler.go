package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edusync/scheduler-api/internal/service"
	appErrors "github.com/edusync/scheduler-api/pkg/errors"
	"github.com/edusync/scheduler-api/pkg/response"
)

// ClassroomHandler manages classroom endpoints.
type ClassroomHandler struct {
	service *service.ClassroomService
}

// NewClassroomHandler constructs handler.
func NewClassroomHandler(svc *service.ClassroomService) *ClassroomHandler {
	return &ClassroomHandler{service: svc}
}

// List godoc
// @Summary List classrooms
// @Tags Classrooms
// @Produce json
// @Success 200 {object} response.ListEnvelope
// @Router /classrooms [get]
func (h *ClassroomHandler) List(c *gin.Context) {
	classrooms, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, classrooms, len(classrooms))
}

// Get godoc
// @Summary Get classroom by id
// @Tags Classrooms
// @Produce json
// @Param id path string true "Classroom ID"
// @Success 200 {object} models.Classroom
// @Router /classrooms/{id} [get]
func (h *ClassroomHandler) Get(c *gin.Context) {
	classroom, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, classroom)
}

// Create godoc
// @Summary Create classroom
// @Tags Classrooms
// @Accept json
// @Produce json
// @Param payload body service.CreateClassroomRequest true "Classroom payload"
// @Success 201 {object} models.Classroom
// @Router /classrooms [post]
func (h *ClassroomHandler) Create(c *gin.Context) {
	var req service.CreateClassroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	classroom, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, classroom)
}

// Update godoc
// @Summary Partially update classroom
// @Tags Classrooms
// @Accept json
// @Produce json
// @Param payload body service.UpdateClassroomRequest true "Patch payload"
// @Success 200 {object} models.Classroom
// @Router /classrooms [patch]
func (h *ClassroomHandler) Update(c *gin.Context) {
	var req service.UpdateClassroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	classroom, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, classroom)
}

// Delete godoc
// @Summary Delete classroom
// @Tags Classrooms
// @Accept json
// @Param payload body service.DeleteClassroomRequest true "Delete payload"
// @Success 204
// @Router /classrooms [delete]
func (h *ClassroomHandler) Delete(c *gin.Context) {
	var req service.DeleteClassroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.service.Delete(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edusync/scheduler-api/internal/service"
	appErrors "github.com/edusync/scheduler-api/pkg/errors"
	"github.com/edusync/scheduler-api/pkg/response"
)

// TeacherHandler manages teacher endpoints.
type TeacherHandler struct {
	service *service.TeacherService
}

// NewTeacherHandler constructs handler.
func NewTeacherHandler(svc *service.TeacherService) *TeacherHandler {
	return &TeacherHandler{service: svc}
}

// List godoc
// @Summary List teachers
// @Tags Teachers
// @Produce json
// @Success 200 {object} response.ListEnvelope
// @Router /teachers [get]
func (h *TeacherHandler) List(c *gin.Context) {
	teachers, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, teachers, len(teachers))
}

// Get godoc
// @Summary Get teacher by id
// @Tags Teachers
// @Produce json
// @Param id path string true "Teacher ID"
// @Success 200 {object} models.Teacher
// @Router /teachers/{id} [get]
func (h *TeacherHandler) Get(c *gin.Context) {
	teacher, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, teacher)
}

// Create godoc
// @Summary Create teacher
// @Tags Teachers
// @Accept json
// @Produce json
// @Param payload body service.CreateTeacherRequest true "Teacher payload"
// @Success 201 {object} models.Teacher
// @Router /teachers [post]
func (h *TeacherHandler) Create(c *gin.Context) {
	var req service.CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	teacher, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, teacher)
}

// Delete godoc
// @Summary Delete teacher
// @Tags Teachers
// @Accept json
// @Param payload body service.DeleteTeacherRequest true "Delete payload"
// @Success 204
// @Router /teachers [delete]
func (h *TeacherHandler) Delete(c *gin.Context) {
	var req service.DeleteTeacherRequest
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

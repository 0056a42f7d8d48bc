package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edusync/scheduler-api/internal/models"
	appErrors "github.com/edusync/scheduler-api/pkg/errors"
)

// ListEnvelope is the contract for collection responses.
type ListEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Count   int         `json:"count"`
}

// List sends a 200 with the {success, data, count} envelope.
func List(c *gin.Context, data interface{}, count int) {
	c.JSON(http.StatusOK, ListEnvelope{Success: true, Data: data, Count: count})
}

// Created responds with HTTP 201 and the raw resource body.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// OK responds with HTTP 200 and the raw resource body.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error renders an error using the status and body shape its category
// demands: 409 conflicts and 422 business-rule violations carry dedicated
// envelopes, validation failures list every violated field, everything else
// falls back to a plain {message} body.
func Error(c *gin.Context, err error) {
	var conflict *models.ScheduleConflictError
	if errors.As(err, &conflict) {
		c.JSON(http.StatusConflict, gin.H{
			"error":   "Schedule conflict",
			"message": conflict.Message,
			"type":    conflict.Type,
			"details": conflict.Details,
		})
		return
	}

	appErr := appErrors.FromError(err)
	switch appErr.Code {
	case appErrors.ErrBusinessRule.Code:
		c.JSON(appErr.Status, gin.H{
			"error":   "Business rule violation",
			"message": appErr.Message,
		})
	case appErrors.ErrValidation.Code:
		details := appErr.Details
		if details == nil {
			details = []appErrors.FieldError{}
		}
		c.JSON(appErr.Status, gin.H{
			"message": appErr.Message,
			"errors":  details,
		})
	default:
		message := appErr.Message
		if message == "" {
			message = appErrors.ErrInternal.Message
		}
		c.JSON(appErr.Status, gin.H{"message": message})
	}
}

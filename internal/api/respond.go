package api

import (
	"errors"
	"net/http"

	"backoffice-service/internal/service"
	"backoffice-service/internal/store"

	"github.com/gin-gonic/gin"
)

// envelope is the uniform response body for every endpoint.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Details string      `json:"details,omitempty"`
}

func respondData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, envelope{Success: true, Data: data})
}

func respondMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, envelope{Success: true, Message: message, Data: data})
}

// respondError maps domain error kinds to HTTP statuses. Underlying
// error text goes into details only outside production.
func (h *Handler) respondError(c *gin.Context, userMsg string, err error) {
	body := envelope{Success: false, Error: userMsg}
	if h.env != "production" && err != nil {
		body.Details = err.Error()
	}
	c.JSON(statusForError(err), body)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, store.ErrAlertNotFound),
		errors.Is(err, store.ErrPaymentMethodNotFound),
		errors.Is(err, store.ErrImageNotFound),
		errors.Is(err, store.ErrPartNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrAlertNotOpen),
		errors.Is(err, service.ErrNoRowsAffected):
		return http.StatusConflict
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

package handlers

import (
	"errors"
	"net/http"

	"user_registry/internal/service"

	"github.com/gin-gonic/gin"
)

// apiResponse is the uniform envelope carried by every endpoint: a success
// flag plus either a data payload or an error message.
type apiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func respondOK(c *gin.Context, code int, data any) {
	c.JSON(code, apiResponse{Success: true, Data: data})
}

func respondError(c *gin.Context, code int, msg string) {
	c.JSON(code, apiResponse{Success: false, Error: msg})
}

// statusForError maps domain errors to HTTP statuses. Anything unrecognized
// is an internal fault.
func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrPasswordMismatch):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrLoginIDRequired),
		errors.Is(err, service.ErrPasswordRequired),
		errors.Is(err, service.ErrLoginIDTaken),
		errors.Is(err, service.ErrNewPasswordRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError writes the envelope for a domain error and logs
// internal faults.
func (h *Handler) respondServiceError(c *gin.Context, err error, logKey string, kv ...interface{}) {
	code := statusForError(err)
	if code == http.StatusInternalServerError && h.log != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	respondError(c, code, err.Error())
}

// Package handler provides response helpers for statistics module.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	trackerModel "github.com/festy23/goalboard/internal/tracker/model"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func errorResponse(c *gin.Context, code, message string, status int) {
	resp := ErrorResponse{}
	resp.Error.Code = code
	resp.Error.Message = message
	c.JSON(status, resp)
}

// failure writes the response for a statistics error and reports whether it was
// an internal one that the caller should log.
func failure(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, trackerModel.ErrInvalidDate):
		errorResponse(c, "INVALID_REQUEST", "date must be YYYY-MM-DD", http.StatusBadRequest)
	case errors.Is(err, trackerModel.ErrGoalNotFound):
		errorResponse(c, "NOT_FOUND", "goal not found", http.StatusNotFound)
	default:
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return true
	}
	return false
}

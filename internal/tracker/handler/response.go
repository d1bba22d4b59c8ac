package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	trackerModel "github.com/festy23/goalboard/internal/tracker/model"
)

// ErrorResponse represents error response structure.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// errorResponse creates error response.
func errorResponse(c *gin.Context, code string, message string, statusCode int) {
	resp := ErrorResponse{}
	resp.Error.Code = code
	resp.Error.Message = message
	c.JSON(statusCode, resp)
}

// badRequest lists the errors reported to clients as INVALID_REQUEST with their own message.
var badRequest = []error{
	trackerModel.ErrInvalidTitle,
	trackerModel.ErrInvalidTime,
	trackerModel.ErrInvalidDate,
	trackerModel.ErrInvalidKPI,
	trackerModel.ErrInvalidStatus,
	trackerModel.ErrInvalidSelection,
}

// domainErrorResponse maps tracker errors to status codes. It reports false for
// errors it does not know.
func domainErrorResponse(c *gin.Context, err error) bool {
	for _, target := range badRequest {
		if errors.Is(err, target) {
			errorResponse(c, "INVALID_REQUEST", target.Error(), http.StatusBadRequest)
			return true
		}
	}

	switch {
	case errors.Is(err, trackerModel.ErrTaskNotFound):
		errorResponse(c, "NOT_FOUND", "task not found", http.StatusNotFound)
	case errors.Is(err, trackerModel.ErrGoalNotFound):
		errorResponse(c, "NOT_FOUND", "goal not found", http.StatusNotFound)
	case errors.Is(err, trackerModel.ErrUnauthorized):
		errorResponse(c, "FORBIDDEN", "team lead capability required", http.StatusForbidden)
	default:
		return false
	}
	return true
}

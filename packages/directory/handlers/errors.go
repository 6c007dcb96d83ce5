package handlers

import (
	"errors"
	"net/http"

	"gaming-directory/packages/directory/services"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error" example:"Gamer not found with ID: 42"`
}

// respondError maps service errors onto status codes. Anything that is not a
// domain error is reported as a generic 500 and attached to the context so the
// access log records the cause.
func respondError(c *gin.Context, err error) {
	var status int
	switch {
	case errors.Is(err, services.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		status = http.StatusConflict
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(status, ErrorResponse{Error: err.Error()})
}

package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmehra/clinicdesk/pkg/errors"
)

// Response wraps all API responses
type Response struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// RespondWithSuccess sends a success response
func RespondWithSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Status: "success", Data: data})
}

// RespondWithCreated sends a success response for a newly created resource
func RespondWithCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{Status: "success", Data: data})
}

// RespondWithError sends an error response, mapping AppError codes to HTTP
// status codes.
func RespondWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	if appErr, ok := errors.As(err); ok {
		status = httpStatus(appErr.Code)
		message = appErr.Message
	}

	c.JSON(status, Response{Status: "error", Message: message})
}

func httpStatus(code errors.ErrorCode) int {
	switch code {
	case errors.ErrNotFound:
		return http.StatusNotFound
	case errors.ErrBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yiryeong/wanted-pre-onboarding/internal/domain"
	"github.com/yiryeong/wanted-pre-onboarding/internal/logger"
)

// Response common response envelope
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SuccessResponse writes a success envelope
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse writes an error envelope
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
		Data:    nil,
	})
}

// HandleError maps a domain failure to its HTTP status. Upstream and
// unknown failures are logged and reported as 500; everything else
// carries its own message to the caller.
func HandleError(c *gin.Context, err error) {
	ErrorResponse(c, ErrorStatus(err), err.Error())
}

// ErrorStatus resolves the HTTP status for a domain error.
func ErrorStatus(err error) int {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest
	}
	var ae *domain.AuthorizationError
	if errors.As(err, &ae) {
		return http.StatusForbidden
	}
	var ce *domain.ConflictError
	if errors.As(err, &ce) {
		return http.StatusConflict
	}
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return http.StatusNotFound
	}
	logger.Error("internal error: %v", err)
	return http.StatusInternalServerError
}

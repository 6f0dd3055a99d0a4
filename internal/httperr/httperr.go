package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func StatusFor(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindPrecondition:
		return http.StatusPreconditionFailed
	case KindConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// Respond writes err as JSON. Business errors keep their code, message and
// details; anything else is logged and reported as a 500.
func Respond(c *gin.Context, err error) {
	be, ok := AsBusiness(err)
	if !ok {
		zap.L().Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		Internal(c, "internal_error", "Unexpected error.")
		return
	}

	message := be.Message
	if message == "" {
		message = be.Code
	}

	body := gin.H{
		"error_code": be.Code,
		"message":    message,
	}
	for k, v := range be.Details {
		body[k] = v
	}

	c.JSON(StatusFor(be.Kind), body)
}

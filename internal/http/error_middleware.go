package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"course-api/internal/service"
)

const unexpectedFailureMessage = "request could not be processed"

// ErrorAggregator traduce los errores que los handlers registran con c.Error
// a una respuesta uniforme y convierte panics en 400. Si el handler ya respondio
// no toca nada.
func ErrorAggregator(logger *zap.Logger, logUnexpected bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("handler panic", zap.Any("panic", r), zap.Stack("stack"))
				if c.Writer.Written() {
					c.Abort()
					return
				}
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": unexpectedFailureMessage})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		status, body, unexpected := classifyError(err)
		if unexpected {
			if logUnexpected {
				logger.Error("request failed", zap.Error(err), zap.String("path", c.Request.URL.Path))
			} else {
				logger.Warn("request failed", zap.Error(err))
			}
		}
		c.JSON(status, body)
	}
}

func classifyError(err error) (int, gin.H, bool) {
	var validation *service.ValidationError
	var failure *service.Failure

	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest, gin.H{"message": validation.Messages}, false
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, gin.H{"message": accessDeniedMessage}, false
	case errors.Is(err, service.ErrUserExists):
		return http.StatusUnauthorized, gin.H{"message": "user exists"}, false
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden, gin.H{"message": err.Error()}, false
	case errors.Is(err, service.ErrCourseNotFound):
		return http.StatusNotFound, gin.H{"message": service.ErrCourseNotFound.Error()}, false
	case errors.Is(err, service.ErrUserNotFound):
		return http.StatusBadRequest, gin.H{"message": "no user found"}, false
	case errors.As(err, &failure):
		return http.StatusBadRequest, gin.H{"message": failure.Reason}, failure.Err != nil
	default:
		return http.StatusBadRequest, gin.H{"message": unexpectedFailureMessage}, true
	}
}

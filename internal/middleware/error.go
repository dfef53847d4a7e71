package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "frota/internal/errors"
	"frota/internal/logger"
)

// ErrorHandler converts errors attached to the Gin context into the
// {"error":{"code","message"}} body used everywhere else. Binding errors map to
// INVALID_INPUT; anything that is not an AppError is logged and hidden behind
// INTERNAL_ERROR.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		last := c.Errors.Last()
		log := logger.Get().With("request_id", c.GetString(requestIDKey), "path", c.Request.URL.Path)

		var appErr *apperrors.AppError
		switch {
		case errors.As(last.Err, &appErr):
			if appErr.Internal != nil {
				log.Errorw("app error", "code", appErr.Code, "internal", appErr.Internal.Error())
			}
		case last.IsType(gin.ErrorTypeBind):
			appErr = apperrors.WithMessage(apperrors.ErrInvalidInput, last.Error())
		default:
			log.Errorw("unexpected error", "error", last.Error(), "method", c.Request.Method)
			appErr = apperrors.ErrInternalServer
		}

		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
	}
}

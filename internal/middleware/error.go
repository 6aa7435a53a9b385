package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "butce/internal/errors"
	"butce/internal/logger"
)

// ErrorHandler returns a Gin middleware that turns errors attached with
// c.Error into a JSON error body when the handler did not write a response.
// AppErrors keep their code and message; anything else is logged and hidden
// behind a generic internal error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) {
			logger.ForRequest(RequestID(c)).Errorw("unexpected error",
				"error", err.Error(),
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
			)
			appErr = apperrors.ErrInternalServer
		} else if appErr.Internal != nil {
			logger.ForRequest(RequestID(c)).Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}

		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
	}
}

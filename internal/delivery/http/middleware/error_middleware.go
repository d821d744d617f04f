package middleware

import (
	"errors"
	"net/http"
	"project-inquiry-backend/internal/delivery/http/response"
	"project-inquiry-backend/pkg/apperror"
	"project-inquiry-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.Error("Request failed", "status", appErr.Code, "request_id", c.GetString(response.RequestIDKey), "error", appErr.Err)
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		// Internal details stay in the server log
		logger.Log.Error("Internal Server Error", "request_id", c.GetString(response.RequestIDKey), "error", err)
		response.Error(c, http.StatusInternalServerError, "Internal Server Error", nil)
	}
}

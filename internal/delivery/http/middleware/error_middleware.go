package middleware

import (
	"errors"
	"net/http"

	"go-recruitment-tracker/internal/delivery/http/response"
	"go-recruitment-tracker/pkg/apperror"
	"go-recruitment-tracker/pkg/logger"

	"github.com/gin-gonic/gin"
)

const unexpectedErrorMessage = "An unexpected error occurred. Please try again later."

// ErrorHandler renders the last error pushed with c.Error. Internal error
// details are only sent to clients when exposeDetails is set.
func ErrorHandler(exposeDetails bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		log := logger.FromContext(c.Request.Context())

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			log.Error("Unhandled error", "error", err, "path", c.Request.URL.Path)
			response.Error(c, http.StatusInternalServerError, unexpectedErrorMessage, nil)
			return
		}

		switch {
		case appErr.Code == http.StatusUnprocessableEntity:
			response.ValidationError(c, appErr.Code, appErr.Message, appErr.Fields)
		case appErr.Code >= http.StatusInternalServerError:
			var detail interface{}
			if exposeDetails && appErr.Detail() != "" {
				detail = appErr.Detail()
			}
			response.Error(c, appErr.Code, appErr.Message, detail)
		default:
			response.Error(c, appErr.Code, appErr.Message, nil)
		}
	}
}

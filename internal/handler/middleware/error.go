package middleware

import (
	"log/slog"
	"net/http"

	"roomfinder/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the envelope a handler recorded with httperr when nothing was
// written yet. A handler that finished without a response becomes a 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if resp, ok := lastPublicError(c.Errors); ok {
			c.JSON(resp.Status, resp)
			return
		}
		if c.Writer.Status() != http.StatusOK {
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.New(http.StatusInternalServerError, httperr.MsgInternal, nil))
	}
}

func lastPublicError(errors []*gin.Error) (httperr.Response, bool) {
	for i := len(errors) - 1; i >= 0; i-- {
		if !errors[i].IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := errors[i].Meta.(httperr.Response); ok {
			return resp, true
		}
	}
	return httperr.Response{}, false
}

// CustomRecovery turns a panic into the 500 envelope. It must be the outermost middleware.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				attrs := []any{"panic", rec, "method", c.Request.Method, "path", c.Request.URL.Path}
				if userID := GetOptionalUserID(c); userID != nil {
					attrs = append(attrs, "user_id", *userID)
				}
				slog.Error("recovered from panic", attrs...)

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.New(http.StatusInternalServerError, httperr.MsgInternal, nil))
			}
		}()
		c.Next()
	}
}

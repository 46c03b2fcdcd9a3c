package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MsgInternal is the only message a 500 carries. The cause stays on the gin context.
const MsgInternal = "Internal server error"

type Message struct {
	Message string `json:"message"`
}

// Response is the `{"error":{"message"},"detail"}` envelope of every failed request.
type Response struct {
	Status int     `json:"-"`
	Error  Message `json:"error"`
	Detail any     `json:"detail,omitempty"`
}

func New(status int, msg string, detail any) Response {
	return Response{Status: status, Error: Message{Message: msg}, Detail: detail}
}

// AbortWithError writes the envelope and records err on the context for the access log.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := New(status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortInternal answers 500 with MsgInternal so storage and driver errors never reach the client.
func AbortInternal(c *gin.Context, err error) {
	AbortWithError(c, http.StatusInternalServerError, err, MsgInternal, nil)
}

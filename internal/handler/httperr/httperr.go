package httperr

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// MiscWarning is the RFC 7234 warn-code for arbitrary, non-fatal warnings.
const MiscWarning = 199

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Warn attaches a Warning header to a response that otherwise succeeded.
// The cause is recorded as a private gin error for the request log.
func Warn(c *gin.Context, err error, msg string) {
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePrivate,
	})
	c.Header("Warning", strconv.Itoa(MiscWarning)+" - "+strconv.Quote(msg))
}

package httperr

import (
	"github.com/gin-gonic/gin"
)

const CodeInternal = "internal_error"

// Response is the JSON error envelope: a machine readable code, an optional
// human message and optional diagnostic details.
type Response struct {
	Status  int    `json:"-"`
	Code    string `json:"error"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, code, msg string, details any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{
		Status:  status,
		Code:    code,
		Message: msg,
		Details: details,
	}

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithText answers with a bare text body, for callers such as payment
// processors that only look at the status line.
func AbortWithText(c *gin.Context, status int, err error, body string) {
	if err == nil {
		panic("AbortWithText: err cannot be nil")
	}

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePrivate,
		Meta: Response{Status: status, Code: body},
	})
	c.Abort()
	c.String(status, body)
}

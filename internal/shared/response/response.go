package response

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the wire format for every response:
// {success, data?, message?, error?}.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, data any) {
	c.JSON(status, Envelope{
		Success: true,
		Data:    data,
	})
}

// Message is used by endpoints that confirm an action without a payload,
// e.g. delete.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{
		Success: true,
		Message: message,
	})
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{
		Success: false,
		Error:   message,
	})
}

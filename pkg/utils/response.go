package utils

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the wire shape for every failed request.
type ErrorBody struct {
	Error string `json:"error"`
}

func ErrorResponse(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{Error: message})
}

package handler

import (
	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func respondError(c *gin.Context, status int, errType, message string) {
	c.JSON(status, errorResponse{
		Error:   errType,
		Message: message,
	})
}

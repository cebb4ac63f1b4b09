package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 错误响应统一为 {"detail": "..."}，不向客户端透出内部细节。
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"detail": msg})
}

func AbortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "invalid credentials"})
}

func Unauthorized(c *gin.Context)           { Error(c, http.StatusUnauthorized, "invalid credentials") }
func Conflict(c *gin.Context, msg string)   { Error(c, http.StatusBadRequest, msg) }
func NotFound(c *gin.Context, msg string)   { Error(c, http.StatusNotFound, msg) }
func Validation(c *gin.Context, msg string) { Error(c, http.StatusUnprocessableEntity, msg) }
func Internal(c *gin.Context, msg string)   { Error(c, http.StatusInternalServerError, msg) }
func TooManyRequests(c *gin.Context, msg string) {
	Error(c, http.StatusTooManyRequests, msg)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestID 日志关联用的短ID
func requestID() string {
	return uuid.New().String()[:8]
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// upstreamError 上游失败统一返回502，错误无内容时使用各端点的兜底文案
func upstreamError(c *gin.Context, err error, fallback string) {
	message := fallback
	if err != nil && err.Error() != "" {
		message = err.Error()
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": message})
}

package handler

import (
	"net/http"

	"influenceos-backend/internal/model"
	"influenceos-backend/internal/service"
	"influenceos-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AgentHandler struct {
	agentService *service.AgentService
}

func NewAgentHandler(agentService *service.AgentService) *AgentHandler {
	return &AgentHandler{
		agentService: agentService,
	}
}

// Chat 处理 POST /api/agent
func (h *AgentHandler) Chat(c *gin.Context) {
	reqID := requestID()

	var req model.AgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		badRequest(c, err.Error())
		return
	}

	resp, err := h.agentService.Chat(c.Request.Context(), &req)
	if err != nil {
		logger.WithField("request_id", reqID).Errorf("对话生成失败: %v", err)
		upstreamError(c, err, "Unknown server error")
		return
	}

	c.JSON(http.StatusOK, resp)
}

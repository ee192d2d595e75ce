package handler

import (
	"net/http"

	"influenceos-backend/internal/model"
	"influenceos-backend/internal/service"
	"influenceos-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type StrategyHandler struct {
	strategyService *service.StrategyService
}

func NewStrategyHandler(strategyService *service.StrategyService) *StrategyHandler {
	return &StrategyHandler{
		strategyService: strategyService,
	}
}

// Generate 处理 POST /api/strategy
func (h *StrategyHandler) Generate(c *gin.Context) {
	reqID := requestID()

	var req model.StrategyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		badRequest(c, err.Error())
		return
	}

	resp, err := h.strategyService.Generate(c.Request.Context(), &req)
	if err != nil {
		logger.WithField("request_id", reqID).Errorf("策略蓝图生成失败: %v", err)
		upstreamError(c, err, "Failed to generate strategy")
		return
	}

	c.JSON(http.StatusOK, resp)
}

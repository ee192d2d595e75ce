package handler

import (
	"net/http"

	"influenceos-backend/internal/model"
	"influenceos-backend/internal/service"
	"influenceos-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type StudioHandler struct {
	studioService *service.StudioService
}

func NewStudioHandler(studioService *service.StudioService) *StudioHandler {
	return &StudioHandler{
		studioService: studioService,
	}
}

// Generate 处理 POST /api/images
func (h *StudioHandler) Generate(c *gin.Context) {
	reqID := requestID()

	var req model.ImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		badRequest(c, err.Error())
		return
	}

	resp, err := h.studioService.Generate(c.Request.Context(), &req)
	if err != nil {
		logger.WithField("request_id", reqID).Errorf("图片生成失败: %v", err)
		upstreamError(c, err, "Unknown image generation error")
		return
	}

	c.JSON(http.StatusOK, resp)
}

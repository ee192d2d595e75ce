package handler

import (
	"net/http"

	"influenceos-backend/internal/model"
	"influenceos-backend/internal/service"
	"influenceos-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoService *service.VideoService
}

func NewVideoHandler(videoService *service.VideoService) *VideoHandler {
	return &VideoHandler{
		videoService: videoService,
	}
}

// Create 处理 POST /api/video
func (h *VideoHandler) Create(c *gin.Context) {
	reqID := requestID()

	var req model.VideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		badRequest(c, err.Error())
		return
	}

	resp, err := h.videoService.Create(c.Request.Context(), &req)
	if err != nil {
		logger.WithField("request_id", reqID).Errorf("视频任务创建失败: %v", err)
		upstreamError(c, err, "Video prediction failed")
		return
	}

	c.JSON(http.StatusOK, resp)
}

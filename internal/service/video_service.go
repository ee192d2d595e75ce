package service

import (
	"context"
	"fmt"

	"influenceos-backend/internal/model"
)

const predictionDashboardBase = "https://replicate.com/p/%s"

// VideoBackend 视频生成上游的窄接口，只创建任务不轮询
type VideoBackend interface {
	CreatePrediction(ctx context.Context, input model.PredictionInput) (*model.Prediction, error)
}

type VideoService struct {
	backend VideoBackend
}

func NewVideoService(backend VideoBackend) *VideoService {
	return &VideoService{
		backend: backend,
	}
}

// Create 发起图生视频任务。output为空说明任务仍在处理中，不算失败；
// 有输出时取最后一个元素作为当前最佳结果
func (s *VideoService) Create(ctx context.Context, req *model.VideoRequest) (*model.VideoResponse, error) {
	prediction, err := s.backend.CreatePrediction(ctx, model.PredictionInput{
		Image:    req.ImageURL,
		Prompt:   req.Concept,
		Duration: req.Duration,
		Motion:   req.MotionStyle,
	})
	if err != nil {
		return nil, err
	}

	resp := &model.VideoResponse{
		Status:       prediction.Status,
		DashboardURL: fmt.Sprintf(predictionDashboardBase, prediction.ID),
	}

	if urls := prediction.OutputURLs(); len(urls) > 0 {
		resp.ResultURL = urls[len(urls)-1]
	}

	return resp, nil
}

package service

import (
	"context"

	"influenceos-backend/internal/model"
)

// 图片格式到上游尺寸参数的映射
var imageSizes = map[string]string{
	model.FormatSquare:    "1024x1024",
	model.FormatPortrait:  "1024x1792",
	model.FormatLandscape: "1792x1024",
}

// ImageBackend 图片生成上游的窄接口，返回base64编码的图片数据
type ImageBackend interface {
	Generate(ctx context.Context, prompt, size string) (string, error)
}

type StudioService struct {
	backend ImageBackend
}

func NewStudioService(backend ImageBackend) *StudioService {
	return &StudioService{
		backend: backend,
	}
}

// Generate 编译提示词并调用上游生成图片，编译后的提示词随结果返回
func (s *StudioService) Generate(ctx context.Context, req *model.ImageRequest) (*model.ImageResponse, error) {
	compiled := BuildImagePrompt(req)

	b64, err := s.backend.Generate(ctx, compiled, imageSizes[req.Format])
	if err != nil {
		return nil, err
	}

	return &model.ImageResponse{
		Image:  "data:image/png;base64," + b64,
		Prompt: compiled,
	}, nil
}

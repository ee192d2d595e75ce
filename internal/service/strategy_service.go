package service

import (
	"context"

	"influenceos-backend/internal/model"

	einoModel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

const (
	strategyTemperature float32 = 0.5
	strategyMaxTokens           = 1800
)

type StrategyService struct {
	chatModel einoModel.ChatModel
}

func NewStrategyService(chatModel einoModel.ChatModel) *StrategyService {
	return &StrategyService{
		chatModel: chatModel,
	}
}

// Generate 渲染策略模板并生成markdown版增长蓝图
func (s *StrategyService) Generate(ctx context.Context, req *model.StrategyRequest) (*model.StrategyResponse, error) {
	messages := []*schema.Message{
		{Role: schema.User, Content: BuildStrategyPrompt(req)},
	}

	resp, err := s.chatModel.Generate(ctx, messages,
		einoModel.WithTemperature(strategyTemperature),
		einoModel.WithMaxTokens(strategyMaxTokens),
	)
	if err != nil {
		return nil, err
	}

	blueprint := resp.Content
	if blueprint == "" {
		blueprint = strategyFallbackReply
	}

	return &model.StrategyResponse{Blueprint: blueprint}, nil
}

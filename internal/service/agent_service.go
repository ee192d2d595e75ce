package service

import (
	"context"

	"influenceos-backend/internal/model"

	einoModel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

const agentTemperature float32 = 0.6

type AgentService struct {
	chatModel einoModel.ChatModel
}

func NewAgentService(chatModel einoModel.ChatModel) *AgentService {
	return &AgentService{
		chatModel: chatModel,
	}
}

// Chat 单轮对话：系统提示词 + 用户输入，回复文本再经关键词路由产生导航提示
func (s *AgentService) Chat(ctx context.Context, req *model.AgentRequest) (*model.AgentResponse, error) {
	messages := []*schema.Message{
		{Role: schema.System, Content: agentSystemPrompt},
		{Role: schema.User, Content: req.Prompt},
	}

	resp, err := s.chatModel.Generate(ctx, messages, einoModel.WithTemperature(agentTemperature))
	if err != nil {
		return nil, err
	}

	reply := resp.Content
	if reply == "" {
		// 上游偶发返回空结果，降级成固定提示而不是报错
		reply = agentFallbackReply
	}

	return &model.AgentResponse{
		Reply:        reply,
		AutoNavigate: AutoNavigate(reply),
	}, nil
}

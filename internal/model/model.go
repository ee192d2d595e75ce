package model

import (
	"context"

	"influenceos-backend/internal/config"
	"influenceos-backend/internal/utils"
	"influenceos-backend/pkg/logger"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino-ext/components/model/qwen"
	einoModel "github.com/cloudwego/eino/components/model"
)

// NewChatModel 根据配置创建聊天模型
func NewChatModel(ctx context.Context) einoModel.ChatModel {
	cfg := config.Get()

	switch cfg.Model.Provider {
	case "openai":
		return createOpenAIModel(cfg.OpenAI)
	case "doubao":
		return createDoubaoModel(ctx, cfg.Doubao)
	case "qwen":
		return createQwenModel(ctx, cfg.Qwen)
	default:
		logger.Fatalf("Unsupported model provider: %s", cfg.Model.Provider)
		return nil
	}
}

func createOpenAIModel(cfg config.OpenAIConfig) einoModel.ChatModel {
	logger.Infof("使用 OpenAI 模型: %s", cfg.Model)
	return newOpenAIChatModel(cfg)
}

func createDoubaoModel(ctx context.Context, cfg config.DoubaoConfig) einoModel.ChatModel {
	logger.Infof("使用 Doubao 模型: %s", cfg.Model)

	chatModel, err := ark.NewChatModel(ctx, &ark.ChatModelConfig{
		APIKey: cfg.APIKey,
		Model:  cfg.Model,
		CustomHeader: map[string]string{
			"X-Ark-Thinking-Mode": "disable",
		},
	})
	if err != nil {
		logger.Fatalf("Failed to create Doubao model: %v", err)
	}

	return chatModel
}

func createQwenModel(ctx context.Context, cfg config.QwenConfig) einoModel.ChatModel {
	logger.Infof("使用 Qwen 模型: %s, BaseURL: %s", cfg.Model, cfg.BaseURL)

	chatModel, err := qwen.NewChatModel(ctx, &qwen.ChatModelConfig{
		BaseURL:     cfg.BaseURL,
		APIKey:      cfg.APIKey,
		Model:       cfg.Model,
		MaxTokens:   &cfg.MaxTokens,
		Temperature: &cfg.Temperature,
		TopP:        &cfg.TopP,
		Timeout:     cfg.Timeout,
		HTTPClient:  utils.NewHTTPClient(cfg.Timeout),
	})
	if err != nil {
		logger.Fatalf("Failed to create Qwen model: %v", err)
	}

	return chatModel
}

package model

import (
	"context"
	"fmt"
	"io"

	"influenceos-backend/internal/config"

	einoModel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	openai "github.com/sashabaranov/go-openai"
)

func newOpenAIClient(cfg config.OpenAIConfig) *openai.Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	return openai.NewClientWithConfig(clientConfig)
}

type openaiChatModel struct {
	client *openai.Client
	model  string
}

func newOpenAIChatModel(cfg config.OpenAIConfig) *openaiChatModel {
	return &openaiChatModel{
		client: newOpenAIClient(cfg),
		model:  cfg.Model,
	}
}

// 实现eino.ChatModel接口
func (m *openaiChatModel) Generate(ctx context.Context, messages []*schema.Message, opts ...einoModel.Option) (*schema.Message, error) {
	req := openai.ChatCompletionRequest{
		Model:    m.model,
		Messages: m.convertMessages(messages),
	}

	// 采样参数按调用方传入的选项覆盖
	o := einoModel.GetCommonOptions(&einoModel.Options{}, opts...)
	if o.Temperature != nil {
		req.Temperature = *o.Temperature
	}
	if o.MaxTokens != nil {
		req.MaxTokens = *o.MaxTokens
	}

	resp, err := m.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	return &schema.Message{
		Role:    schema.Assistant,
		Content: resp.Choices[0].Message.Content,
	}, nil
}

func (m *openaiChatModel) Stream(ctx context.Context, messages []*schema.Message, opts ...einoModel.Option) (*schema.StreamReader[*schema.Message], error) {
	stream, err := m.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:    m.model,
		Messages: m.convertMessages(messages),
		Stream:   true,
	})
	if err != nil {
		return nil, err
	}

	reader, writer := schema.Pipe[*schema.Message](100)

	go func() {
		defer writer.Close()
		defer stream.Close()

		for {
			response, err := stream.Recv()
			if err != nil {
				if err == io.EOF {
					return
				}
				return
			}
			if len(response.Choices) > 0 && response.Choices[0].Delta.Content != "" {
				writer.Send(&schema.Message{
					Role:    schema.Assistant,
					Content: response.Choices[0].Delta.Content,
				}, nil)
			}
		}
	}()

	return reader, nil
}

func (m *openaiChatModel) BindTools(tools []*schema.ToolInfo) error {
	// 本服务不走function calling
	return nil
}

func (m *openaiChatModel) convertMessages(messages []*schema.Message) []openai.ChatCompletionMessage {
	var result []openai.ChatCompletionMessage
	for _, msg := range messages {
		role := "user"
		if msg.Role == schema.Assistant {
			role = "assistant"
		} else if msg.Role == schema.System {
			role = "system"
		}

		// 空的assistant消息会触发API报错，直接跳过
		if msg.Content == "" && role == "assistant" {
			continue
		}

		result = append(result, openai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Content,
		})
	}
	return result
}

// ImageClient 封装OpenAI图片生成接口
type ImageClient struct {
	client *openai.Client
	model  string
}

func NewImageClient(cfg config.OpenAIConfig) *ImageClient {
	return &ImageClient{
		client: newOpenAIClient(cfg),
		model:  cfg.ImageModel,
	}
}

// Generate 生成单张图片，返回base64编码的PNG数据
func (c *ImageClient) Generate(ctx context.Context, prompt, size string) (string, error) {
	resp, err := c.client.CreateImage(ctx, openai.ImageRequest{
		Model:   c.model,
		Prompt:  prompt,
		Size:    size,
		Style:   "vivid",
		Quality: "high",
		N:       1,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return "", ErrNoImage
	}

	return resp.Data[0].B64JSON, nil
}

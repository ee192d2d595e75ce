package model

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"influenceos-backend/internal/config"
	"influenceos-backend/internal/utils"
)

// PredictionInput 视频生成任务的输入参数
type PredictionInput struct {
	Image    string  `json:"image"`
	Prompt   string  `json:"prompt"`
	Duration float64 `json:"duration"`
	Motion   string  `json:"motion"`
}

// Prediction 上游返回的任务状态。Output在任务完成前可能为空，
// 不同模型返回单个URL或URL列表两种形态。
type Prediction struct {
	ID     string          `json:"id"`
	Status string          `json:"status"`
	Output json.RawMessage `json:"output"`
	Error  string          `json:"error,omitempty"`
}

// OutputURLs 兼容列表和单个字符串两种output形态
func (p *Prediction) OutputURLs() []string {
	if len(p.Output) == 0 {
		return nil
	}

	var urls []string
	if err := json.Unmarshal(p.Output, &urls); err == nil {
		return urls
	}

	var single string
	if err := json.Unmarshal(p.Output, &single); err == nil && single != "" {
		return []string{single}
	}

	return nil
}

// ReplicateClient 负责创建视频生成任务，只创建不轮询
type ReplicateClient struct {
	token      string
	baseURL    string
	version    string
	httpClient *http.Client
}

func NewReplicateClient(cfg config.ReplicateConfig) *ReplicateClient {
	return &ReplicateClient{
		token:      cfg.APIToken,
		baseURL:    cfg.BaseURL,
		version:    cfg.Version,
		httpClient: utils.NewHTTPClient(cfg.Timeout),
	}
}

func (c *ReplicateClient) CreatePrediction(ctx context.Context, input PredictionInput) (*Prediction, error) {
	reqBody := map[string]interface{}{
		"version": c.version,
		"input":   input,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal prediction request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/predictions", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Token "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call replicate: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read replicate response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("replicate returned status %d: %s", resp.StatusCode, string(body))
	}

	var prediction Prediction
	if err := json.Unmarshal(body, &prediction); err != nil {
		return nil, fmt.Errorf("failed to decode prediction: %w", err)
	}

	return &prediction, nil
}

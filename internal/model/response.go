package model

type AgentResponse struct {
	Reply        string `json:"reply"`
	AutoNavigate string `json:"autoNavigate,omitempty"` // visuals / video / growth
}

type ImageResponse struct {
	Image  string `json:"image"`  // data:image/png;base64,... 形式
	Prompt string `json:"prompt"` // 实际发送给上游的完整提示词
}

type StrategyResponse struct {
	Blueprint string `json:"blueprint"`
}

type VideoResponse struct {
	Status       string `json:"status"`
	ResultURL    string `json:"resultUrl,omitempty"`
	DashboardURL string `json:"dashboardUrl,omitempty"`
}

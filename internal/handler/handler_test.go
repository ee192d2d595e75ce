package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"influenceos-backend/internal/model"
	"influenceos-backend/internal/service"

	einoModel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubChatModel struct {
	calls int
	reply string
	err   error
}

func (s *stubChatModel) Generate(ctx context.Context, messages []*schema.Message, opts ...einoModel.Option) (*schema.Message, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &schema.Message{Role: schema.Assistant, Content: s.reply}, nil
}

func (s *stubChatModel) Stream(ctx context.Context, messages []*schema.Message, opts ...einoModel.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("stream not supported in stub")
}

func (s *stubChatModel) BindTools(tools []*schema.ToolInfo) error {
	return nil
}

type stubImageBackend struct {
	calls int
	b64   string
	err   error
}

func (s *stubImageBackend) Generate(ctx context.Context, prompt, size string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.b64, nil
}

type stubVideoBackend struct {
	calls      int
	prediction *model.Prediction
	err        error
}

func (s *stubVideoBackend) CreatePrediction(ctx context.Context, input model.PredictionInput) (*model.Prediction, error) {
	s.calls++
	return s.prediction, s.err
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func newAgentRouter(chat *stubChatModel) *gin.Engine {
	router := gin.New()
	router.POST("/api/agent", NewAgentHandler(service.NewAgentService(chat)).Chat)
	return router
}

func TestAgentChatHandler(t *testing.T) {
	stub := &stubChatModel{reply: "Design a banner first."}
	router := newAgentRouter(stub)

	w := postJSON(router, "/api/agent", `{"prompt":"help me launch"}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Design a banner first.", body["reply"])
	assert.Equal(t, "visuals", body["autoNavigate"])
}

// 校验失败必须在任何上游调用之前返回
func TestAgentChatHandlerRejectsBeforeUpstream(t *testing.T) {
	stub := &stubChatModel{reply: "unused"}
	router := newAgentRouter(stub)

	w := postJSON(router, "/api/agent", `{"prompt":"hi"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Prompt is too short", decodeBody(t, w)["error"])
	assert.Equal(t, 0, stub.calls)
}

func TestAgentChatHandlerMalformedJSON(t *testing.T) {
	stub := &stubChatModel{}
	router := newAgentRouter(stub)

	w := postJSON(router, "/api/agent", `{"prompt":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, stub.calls)
}

func TestAgentChatHandlerUpstreamError(t *testing.T) {
	stub := &stubChatModel{err: errors.New("rate limited")}
	router := newAgentRouter(stub)

	w := postJSON(router, "/api/agent", `{"prompt":"help me launch"}`)
	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "rate limited", decodeBody(t, w)["error"])
}

func TestStudioHandler(t *testing.T) {
	stub := &stubImageBackend{b64: "aGVsbG8="}
	router := gin.New()
	router.POST("/api/images", NewStudioHandler(service.NewStudioService(stub)).Generate)

	w := postJSON(router, "/api/images", `{"prompt":"a neon launch banner for my channel","format":"landscape","vibe":"bold"}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "data:image/png;base64,aGVsbG8=", body["image"])
	// 编译后的提示词原样返回，包含传入的format与vibe
	prompt := body["prompt"].(string)
	assert.Contains(t, prompt, "format: landscape")
	assert.Contains(t, prompt, "aesthetic vibe: bold")
}

func TestStudioHandlerShortBrief(t *testing.T) {
	stub := &stubImageBackend{b64: "aGVsbG8="}
	router := gin.New()
	router.POST("/api/images", NewStudioHandler(service.NewStudioService(stub)).Generate)

	w := postJSON(router, "/api/images", `{"prompt":"banner"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Provide a richer creative brief.", decodeBody(t, w)["error"])
	assert.Equal(t, 0, stub.calls)
}

func TestStudioHandlerEmptyImage(t *testing.T) {
	stub := &stubImageBackend{err: model.ErrNoImage}
	router := gin.New()
	router.POST("/api/images", NewStudioHandler(service.NewStudioService(stub)).Generate)

	w := postJSON(router, "/api/images", `{"prompt":"a neon launch banner for my channel"}`)
	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "no image returned from OpenAI", decodeBody(t, w)["error"])
}

func TestStrategyHandler(t *testing.T) {
	stub := &stubChatModel{reply: "# Blueprint"}
	router := gin.New()
	router.POST("/api/strategy", NewStrategyHandler(service.NewStrategyService(stub)).Generate)

	w := postJSON(router, "/api/strategy", `{"persona":"tech lifestyle creator","goals":"grow to 100k followers"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "# Blueprint", decodeBody(t, w)["blueprint"])
}

func TestVideoHandler(t *testing.T) {
	stub := &stubVideoBackend{
		prediction: &model.Prediction{
			ID:     "pred-42",
			Status: "processing",
			Output: json.RawMessage(`["a","b","c"]`),
		},
	}
	router := gin.New()
	router.POST("/api/video", NewVideoHandler(service.NewVideoService(stub)).Create)

	w := postJSON(router, "/api/video", `{"imageUrl":"https://cdn.example.com/frame.png","concept":"slow camera pan","duration":8,"motionStyle":"cinematic"}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "processing", body["status"])
	assert.Equal(t, "c", body["resultUrl"])
	assert.Equal(t, "https://replicate.com/p/pred-42", body["dashboardUrl"])
}

func TestVideoHandlerDurationOutOfRange(t *testing.T) {
	stub := &stubVideoBackend{}
	router := gin.New()
	router.POST("/api/video", NewVideoHandler(service.NewVideoService(stub)).Create)

	w := postJSON(router, "/api/video", `{"imageUrl":"https://cdn.example.com/frame.png","concept":"slow camera pan","duration":13,"motionStyle":"cinematic"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, stub.calls)
}

package model

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"influenceos-backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReplicateClient(baseURL string) *ReplicateClient {
	return NewReplicateClient(config.ReplicateConfig{
		APIToken: "test-token",
		BaseURL:  baseURL,
		Version:  "model-version-1",
		Timeout:  5 * time.Second,
	})
}

func TestCreatePrediction(t *testing.T) {
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/predictions", r.URL.Path)
		assert.Equal(t, "Token test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"pred-42","status":"starting","output":null}`))
	}))
	defer server.Close()

	client := newTestReplicateClient(server.URL)

	prediction, err := client.CreatePrediction(context.Background(), PredictionInput{
		Image:    "https://cdn.example.com/frame.png",
		Prompt:   "slow pan over the skyline",
		Duration: 8,
		Motion:   "cinematic",
	})
	require.NoError(t, err)

	assert.Equal(t, "pred-42", prediction.ID)
	assert.Equal(t, "starting", prediction.Status)
	assert.Empty(t, prediction.OutputURLs())

	// 请求体字段按上游约定改名：image / prompt / duration / motion
	assert.Equal(t, "model-version-1", gotBody["version"])
	input := gotBody["input"].(map[string]interface{})
	assert.Equal(t, "https://cdn.example.com/frame.png", input["image"])
	assert.Equal(t, "slow pan over the skyline", input["prompt"])
	assert.Equal(t, float64(8), input["duration"])
	assert.Equal(t, "cinematic", input["motion"])
}

func TestCreatePredictionUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":"invalid version"}`))
	}))
	defer server.Close()

	client := newTestReplicateClient(server.URL)

	_, err := client.CreatePrediction(context.Background(), PredictionInput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
	assert.Contains(t, err.Error(), "invalid version")
}

func TestPredictionOutputURLs(t *testing.T) {
	p := &Prediction{Output: json.RawMessage(`["a","b","c"]`)}
	assert.Equal(t, []string{"a", "b", "c"}, p.OutputURLs())

	// 部分模型返回单个URL字符串
	p = &Prediction{Output: json.RawMessage(`"https://cdn.example.com/out.mp4"`)}
	assert.Equal(t, []string{"https://cdn.example.com/out.mp4"}, p.OutputURLs())

	p = &Prediction{Output: json.RawMessage(`null`)}
	assert.Empty(t, p.OutputURLs())

	p = &Prediction{}
	assert.Empty(t, p.OutputURLs())
}

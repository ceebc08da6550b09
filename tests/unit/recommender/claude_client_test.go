package recommender_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"aravalli/internal/config"
	"aravalli/internal/domain"
	"aravalli/internal/port"
	"aravalli/internal/recommender"
	"aravalli/internal/recommender/claude"
)

func testRecommenderConfig() *config.RecommenderConfig {
	return &config.RecommenderConfig{
		Provider:    "claude",
		APIKey:      "test-key",
		TimeoutSecs: 5,
	}
}

func claudeResponse(text string) map[string]interface{} {
	return map[string]interface{}{
		"content": []map[string]interface{}{
			{"type": "text", "text": text},
		},
		"stop_reason": "end_turn",
	}
}

func TestClaudeClient_Recommend_Success(t *testing.T) {
	payload := `{
		"recommended_material": "PVC foam board, 18mm",
		"recommended_dimensions": {"height_cm": 180, "width_cm": 90, "depth_cm": 45},
		"considerations": ["moisture resistance", "hinge reinforcement"]
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.NotEmpty(t, r.Header.Get("anthropic-version"))

		var req map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotEmpty(t, req["model"])

		_ = json.NewEncoder(w).Encode(claudeResponse(payload))
	}))
	defer server.Close()

	client := claude.NewClientWithEndpoint(testRecommenderConfig(), server.URL)

	rec, err := client.Recommend(context.Background(), port.RecommendInput{
		ProjectDescription: "wardrobe for a humid coastal flat",
		PastProjects:       []string{"kitchen cabinets"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "PVC foam board, 18mm", rec.RecommendedMaterial)
	assert.Equal(t, 180.0, rec.RecommendedDimensions.HeightCm)
	assert.Equal(t, 90.0, rec.RecommendedDimensions.WidthCm)
	assert.Equal(t, 45.0, rec.RecommendedDimensions.DepthCm)
	assert.Len(t, rec.Considerations, 2)
}

func TestClaudeClient_Recommend_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(claudeResponse("here is my recommendation: use plywood"))
	}))
	defer server.Close()

	client := claude.NewClientWithEndpoint(testRecommenderConfig(), server.URL)

	_, err := client.Recommend(context.Background(), port.RecommendInput{
		ProjectDescription: "wardrobe",
	})

	assert.ErrorIs(t, err, domain.ErrUpstreamFormat)
}

func TestClaudeClient_Recommend_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := claude.NewClientWithEndpoint(testRecommenderConfig(), server.URL)

	_, err := client.Recommend(context.Background(), port.RecommendInput{
		ProjectDescription: "wardrobe",
	})

	var rateLimitErr *recommender.RateLimitError
	assert.ErrorAs(t, err, &rateLimitErr)
	assert.Equal(t, "claude", rateLimitErr.Provider)
	assert.Equal(t, float64(30), rateLimitErr.RetryAfter.Seconds())
}

func TestClaudeClient_Recommend_EmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"content":     []map[string]interface{}{},
			"stop_reason": "end_turn",
		})
	}))
	defer server.Close()

	client := claude.NewClientWithEndpoint(testRecommenderConfig(), server.URL)

	_, err := client.Recommend(context.Background(), port.RecommendInput{
		ProjectDescription: "wardrobe",
	})

	assert.ErrorIs(t, err, domain.ErrUpstreamFormat)
}

func TestClaudeClient_Recommend_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := claude.NewClientWithEndpoint(testRecommenderConfig(), server.URL)

	_, err := client.Recommend(context.Background(), port.RecommendInput{
		ProjectDescription: "wardrobe",
	})

	assert.Error(t, err)
	var rateLimitErr *recommender.RateLimitError
	assert.False(t, errors.As(err, &rateLimitErr))
}

package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"aravalli/internal/domain"
	"aravalli/internal/handler"
	"aravalli/internal/recommender"
	"aravalli/mocks"
)

func newRecommendationHandler() (*handler.RecommendationHandler, *mocks.MockRecommendationService) {
	mockSvc := new(mocks.MockRecommendationService)
	h := handler.NewRecommendationHandler(mockSvc)
	return h, mockSvc
}

func TestRecommendationHandler_Recommend_Success(t *testing.T) {
	h, mockSvc := newRecommendationHandler()
	ownerID := uuid.New()

	rec := &domain.Recommendation{
		RecommendedMaterial: "PVC foam board, 18mm",
		RecommendedDimensions: domain.Dimensions{
			HeightCm: 180, WidthCm: 90, DepthCm: 45,
		},
		Considerations: []string{"moisture resistance"},
	}
	mockSvc.On("Recommend", mock.Anything, "wardrobe for a humid flat", []string{"kitchen cabinets"}).
		Return(rec, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"project_description": "wardrobe for a humid flat",
		"past_projects":       []string{"kitchen cabinets"},
	})

	c, w := newAuthedContext(ownerID)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/recommendations", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Recommend(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	mockSvc.AssertExpectations(t)
}

func TestRecommendationHandler_Recommend_MissingDescription(t *testing.T) {
	h, mockSvc := newRecommendationHandler()

	body, _ := json.Marshal(map[string]interface{}{
		"past_projects": []string{"kitchen cabinets"},
	})

	c, w := newAuthedContext(uuid.New())
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/recommendations", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Recommend(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Recommend", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecommendationHandler_Recommend_UpstreamFormatError(t *testing.T) {
	h, mockSvc := newRecommendationHandler()

	mockSvc.On("Recommend", mock.Anything, "wardrobe", mock.Anything).
		Return(nil, domain.ErrUpstreamFormat)

	body, _ := json.Marshal(map[string]interface{}{
		"project_description": "wardrobe",
	})

	c, w := newAuthedContext(uuid.New())
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/recommendations", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Recommend(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestRecommendationHandler_Recommend_RateLimited(t *testing.T) {
	h, mockSvc := newRecommendationHandler()

	mockSvc.On("Recommend", mock.Anything, "wardrobe", mock.Anything).
		Return(nil, recommender.NewRateLimitError("claude", errors.New("too many requests"), 30))

	body, _ := json.Marshal(map[string]interface{}{
		"project_description": "wardrobe",
	})

	c, w := newAuthedContext(uuid.New())
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/recommendations", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Recommend(c)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

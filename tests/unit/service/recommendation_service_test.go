package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"aravalli/internal/domain"
	"aravalli/internal/port"
	"aravalli/internal/service"
	"aravalli/mocks"
)

func TestRecommendationService_Recommend_Success(t *testing.T) {
	rec := new(mocks.MockRecommender)
	svc := service.NewRecommendationService(rec)

	expected := &domain.Recommendation{
		RecommendedMaterial: "PVC foam board, 18mm",
		RecommendedDimensions: domain.Dimensions{
			HeightCm: 180,
			WidthCm:  90,
			DepthCm:  45,
		},
		Considerations: []string{"moisture resistance", "load-bearing shelves"},
	}
	rec.On("Recommend", mock.Anything, port.RecommendInput{
		ProjectDescription: "wardrobe for a humid coastal flat",
		PastProjects:       []string{"kitchen cabinets"},
	}).Return(expected, nil)

	result, err := svc.Recommend(context.Background(), "wardrobe for a humid coastal flat", []string{"kitchen cabinets"})

	assert.NoError(t, err)
	assert.Equal(t, expected, result)
	rec.AssertExpectations(t)
}

func TestRecommendationService_Recommend_EmptyDescription(t *testing.T) {
	rec := new(mocks.MockRecommender)
	svc := service.NewRecommendationService(rec)

	_, err := svc.Recommend(context.Background(), "   ", nil)

	assert.ErrorIs(t, err, domain.ErrValidation)
	rec.AssertNotCalled(t, "Recommend", mock.Anything, mock.Anything)
}

func TestRecommendationService_Recommend_TrimsBlankPastProjects(t *testing.T) {
	rec := new(mocks.MockRecommender)
	svc := service.NewRecommendationService(rec)

	rec.On("Recommend", mock.Anything, port.RecommendInput{
		ProjectDescription: "TV unit",
		PastProjects:       []string{"bookshelf"},
	}).Return(&domain.Recommendation{RecommendedMaterial: "PVC laminate"}, nil)

	_, err := svc.Recommend(context.Background(), "TV unit", []string{"  ", "bookshelf", ""})

	assert.NoError(t, err)
	rec.AssertExpectations(t)
}

func TestRecommendationService_Recommend_UpstreamError(t *testing.T) {
	rec := new(mocks.MockRecommender)
	svc := service.NewRecommendationService(rec)

	upstream := errors.New("connection reset")
	rec.On("Recommend", mock.Anything, mock.Anything).Return(nil, upstream)

	_, err := svc.Recommend(context.Background(), "TV unit", nil)

	assert.ErrorIs(t, err, upstream)
}

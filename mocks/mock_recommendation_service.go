package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"aravalli/internal/domain"
)

// MockRecommendationService is a mock implementation of service.RecommendationService.
type MockRecommendationService struct {
	mock.Mock
}

func (m *MockRecommendationService) Recommend(ctx context.Context, projectDescription string, pastProjects []string) (*domain.Recommendation, error) {
	args := m.Called(ctx, projectDescription, pastProjects)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recommendation), args.Error(1)
}

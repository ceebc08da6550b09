package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"aravalli/internal/domain"
	"aravalli/internal/port"
)

// MockRecommender is a mock implementation of port.Recommender.
type MockRecommender struct {
	mock.Mock
}

func (m *MockRecommender) Recommend(ctx context.Context, input port.RecommendInput) (*domain.Recommendation, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recommendation), args.Error(1)
}

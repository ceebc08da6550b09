package port

import (
	"context"

	"aravalli/internal/domain"
)

// RecommendInput carries the data for a material/size recommendation request.
type RecommendInput struct {
	ProjectDescription string
	PastProjects       []string
}

// Recommender abstracts the hosted text-generation service. One call per
// invocation; callers decide whether to retry.
type Recommender interface {
	Recommend(ctx context.Context, input RecommendInput) (*domain.Recommendation, error)
}

package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"aravalli/internal/domain"
	"aravalli/internal/port"
)

// RecommendationService defines the material/size recommendation contract.
type RecommendationService interface {
	Recommend(ctx context.Context, projectDescription string, pastProjects []string) (*domain.Recommendation, error)
}

type recommendationService struct {
	recommender port.Recommender
}

// NewRecommendationService creates a new RecommendationService implementation.
func NewRecommendationService(recommender port.Recommender) RecommendationService {
	return &recommendationService{recommender: recommender}
}

// Recommend validates the description and forwards one call to the generation
// service. No retries and no caching; the user re-triggers on failure.
func (s *recommendationService) Recommend(ctx context.Context, projectDescription string, pastProjects []string) (*domain.Recommendation, error) {
	if strings.TrimSpace(projectDescription) == "" {
		return nil, domain.ValidationErrorf("project description is required")
	}

	// Drop blank past-project lines before forwarding.
	cleaned := make([]string, 0, len(pastProjects))
	for _, p := range pastProjects {
		if p = strings.TrimSpace(p); p != "" {
			cleaned = append(cleaned, p)
		}
	}

	rec, err := s.recommender.Recommend(ctx, port.RecommendInput{
		ProjectDescription: projectDescription,
		PastProjects:       cleaned,
	})
	if err != nil {
		log.Printf("recommendationService.Recommend: upstream call failed: %v", err)
		return nil, fmt.Errorf("requesting recommendation: %w", err)
	}
	return rec, nil
}

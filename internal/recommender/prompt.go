package recommender

import (
	"encoding/json"
	"fmt"
	"strings"

	"aravalli/internal/domain"
)

// BuildRecommendationPrompt returns the prompt asking the model for a PVC
// material and size recommendation. Dimensions are requested as structured
// numeric fields so no free-text parsing happens downstream.
func BuildRecommendationPrompt(projectDescription string, pastProjects []string) string {
	var b strings.Builder

	b.WriteString(`You are an assistant that recommends suitable PVC materials and dimensions for furniture projects.

Based on the project description and past project details, provide a recommendation for material and dimensions, as well as key considerations.

Return ONLY valid JSON with no markdown formatting, no code fences, no explanation. The JSON object must follow this schema exactly:
{
  "recommended_material": "",
  "recommended_dimensions": {"height_cm": 0, "width_cm": 0, "depth_cm": 0},
  "considerations": [""]
}

Dimensions must be numbers in centimeters, never embedded in prose.

Project Description: `)
	b.WriteString(projectDescription)
	b.WriteString("\n")

	if len(pastProjects) > 0 {
		b.WriteString("Past Projects:\n")
		for _, p := range pastProjects {
			b.WriteString("- " + p + "\n")
		}
	} else {
		b.WriteString("No past projects provided.\n")
	}

	return b.String()
}

// DecodeRecommendation parses the model's text output into a Recommendation.
// Anything that does not match the schema fails with ErrUpstreamFormat.
func DecodeRecommendation(text string) (*domain.Recommendation, error) {
	var rec domain.Recommendation
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &rec); err != nil {
		return nil, fmt.Errorf("%w: %v (raw: %s)", domain.ErrUpstreamFormat, err, truncate(text, 500))
	}
	if rec.RecommendedMaterial == "" {
		return nil, fmt.Errorf("%w: missing recommended_material", domain.ErrUpstreamFormat)
	}
	return &rec, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

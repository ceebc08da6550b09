package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aravalli/internal/service"
)

// RecommendationHandler handles furniture recommendation requests.
type RecommendationHandler struct {
	recommendationService service.RecommendationService
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(recommendationService service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

// Recommend handles POST /api/v1/recommendations
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	if _, ok := extractOwner(c); !ok {
		return
	}

	var req struct {
		ProjectDescription string   `json:"project_description" binding:"required"`
		PastProjects       []string `json:"past_projects"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "project_description is required")
		return
	}

	rec, err := h.recommendationService.Recommend(c.Request.Context(), req.ProjectDescription, req.PastProjects)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rec)
}

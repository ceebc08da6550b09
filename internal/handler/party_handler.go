package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"aravalli/internal/service"
)

// PartyHandler handles party endpoints.
type PartyHandler struct {
	partyService service.PartyService
}

// NewPartyHandler creates a new PartyHandler.
func NewPartyHandler(partyService service.PartyService) *PartyHandler {
	return &PartyHandler{partyService: partyService}
}

// Create handles POST /api/v1/parties
func (h *PartyHandler) Create(c *gin.Context) {
	ownerID, ok := extractOwner(c)
	if !ok {
		return
	}

	var req struct {
		Name    string `json:"name" binding:"required"`
		Mobile  string `json:"mobile" binding:"required"`
		Email   string `json:"email"`
		Address string `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "name and mobile are required")
		return
	}

	party, err := h.partyService.Create(c.Request.Context(), &service.CreatePartyInput{
		OwnerID: ownerID,
		Name:    req.Name,
		Mobile:  req.Mobile,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, party)
}

// List handles GET /api/v1/parties
func (h *PartyHandler) List(c *gin.Context) {
	ownerID, ok := extractOwner(c)
	if !ok {
		return
	}

	parties, err := h.partyService.List(c.Request.Context(), ownerID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, parties)
}

// GetByID handles GET /api/v1/parties/:id
func (h *PartyHandler) GetByID(c *gin.Context) {
	ownerID, ok := extractOwner(c)
	if !ok {
		return
	}

	partyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid party id")
		return
	}

	party, err := h.partyService.GetByID(c.Request.Context(), ownerID, partyID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, party)
}

// Delete handles DELETE /api/v1/parties/:id
// Removes the party together with every invoice that references it.
func (h *PartyHandler) Delete(c *gin.Context) {
	ownerID, ok := extractOwner(c)
	if !ok {
		return
	}

	partyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid party id")
		return
	}

	if err := h.partyService.DeleteCascade(c.Request.Context(), ownerID, partyID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}

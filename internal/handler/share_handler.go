package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"aravalli/internal/domain"
	"aravalli/internal/render"
	"aravalli/internal/service"
)

// ShareHandler serves invoice views to recipients who follow a share link.
// No session is required; the owner and invoice ids come from the link itself.
type ShareHandler struct {
	invoiceService service.InvoiceService
}

// NewShareHandler creates a new ShareHandler.
func NewShareHandler(invoiceService service.InvoiceService) *ShareHandler {
	return &ShareHandler{invoiceService: invoiceService}
}

// View handles GET /share/invoice?owner=..&invoice=..
func (h *ShareHandler) View(c *gin.Context) {
	ownerID, err := uuid.Parse(c.Query("owner"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid owner id")
		return
	}
	invoiceID, err := uuid.Parse(c.Query("invoice"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid invoice id")
		return
	}

	view, err := h.invoiceService.RenderView(c.Request.Context(), ownerID, invoiceID, render.Options{
		Theme: domain.ThemeShare,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, view)
}

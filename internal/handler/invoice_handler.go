package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"aravalli/internal/domain"
	"aravalli/internal/render"
	"aravalli/internal/service"
)

// InvoiceHandler handles invoice endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

type invoiceItemRequest struct {
	Product string  `json:"product" binding:"required"`
	Qty     float64 `json:"qty" binding:"required"`
	Rate    float64 `json:"rate" binding:"required"`
	PerKg   float64 `json:"per_kg"`
}

// Create handles POST /api/v1/invoices
func (h *InvoiceHandler) Create(c *gin.Context) {
	ownerID, ok := extractOwner(c)
	if !ok {
		return
	}

	var req struct {
		PartyID uuid.UUID            `json:"party_id" binding:"required"`
		Items   []invoiceItemRequest `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "party_id and items are required")
		return
	}

	items := make([]domain.InvoiceItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = domain.InvoiceItem{
			Product: it.Product,
			Qty:     it.Qty,
			Rate:    it.Rate,
			PerKg:   it.PerKg,
		}
	}

	invoice, err := h.invoiceService.Create(c.Request.Context(), &service.CreateInvoiceInput{
		OwnerID: ownerID,
		PartyID: req.PartyID,
		Items:   items,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, invoice)
}

// List handles GET /api/v1/invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	ownerID, ok := extractOwner(c)
	if !ok {
		return
	}

	invoices, err := h.invoiceService.ListForOwner(c.Request.Context(), ownerID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, invoices)
}

// ListForParty handles GET /api/v1/parties/:id/invoices
func (h *InvoiceHandler) ListForParty(c *gin.Context) {
	ownerID, ok := extractOwner(c)
	if !ok {
		return
	}

	partyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid party id")
		return
	}

	invoices, err := h.invoiceService.ListForParty(c.Request.Context(), ownerID, partyID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, invoices)
}

// GetByID handles GET /api/v1/invoices/:id
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	ownerID, ok := extractOwner(c)
	if !ok {
		return
	}

	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid invoice id")
		return
	}

	invoice, err := h.invoiceService.GetByID(c.Request.Context(), ownerID, invoiceID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, invoice)
}

// RenderView handles GET /api/v1/invoices/:id/view
// Query params: theme (classic|print|share), amount_paid (print flow only).
func (h *InvoiceHandler) RenderView(c *gin.Context) {
	ownerID, ok := extractOwner(c)
	if !ok {
		return
	}

	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid invoice id")
		return
	}

	opts := render.Options{Theme: domain.InvoiceTheme(c.DefaultQuery("theme", string(domain.ThemeClassic)))}
	if raw := c.Query("amount_paid"); raw != "" {
		paid, err := strconv.ParseFloat(raw, 64)
		if err != nil || paid < 0 {
			RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "amount_paid must be a non-negative number")
			return
		}
		opts.AmountPaid = paid
	}

	view, err := h.invoiceService.RenderView(c.Request.Context(), ownerID, invoiceID, opts)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, view)
}

// Share handles POST /api/v1/invoices/:id/share
// Returns the public share URL and optionally emails it to the recipient.
func (h *InvoiceHandler) Share(c *gin.Context) {
	ownerID, ok := extractOwner(c)
	if !ok {
		return
	}

	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid invoice id")
		return
	}

	var req struct {
		ToEmail string `json:"to_email"`
		ToName  string `json:"to_name"`
	}
	// Body is optional; without a recipient we only return the link.
	_ = c.ShouldBindJSON(&req)

	if req.ToEmail != "" {
		err := h.invoiceService.EmailShareLink(c.Request.Context(), &service.ShareInvoiceInput{
			OwnerID:   ownerID,
			InvoiceID: invoiceID,
			ToEmail:   req.ToEmail,
			ToName:    req.ToName,
		})
		if err != nil {
			HandleError(c, err)
			return
		}
	}

	RespondOK(c, gin.H{"share_url": h.invoiceService.ShareURL(ownerID, invoiceID)})
}

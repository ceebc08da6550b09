package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"aravalli/internal/domain"
	"aravalli/internal/handler"
	"aravalli/internal/render"
	"aravalli/mocks"
)

func newShareHandler() (*handler.ShareHandler, *mocks.MockInvoiceService) {
	mockSvc := new(mocks.MockInvoiceService)
	h := handler.NewShareHandler(mockSvc)
	return h, mockSvc
}

func TestShareHandler_View_Success(t *testing.T) {
	h, mockSvc := newShareHandler()
	ownerID := uuid.New()
	invoiceID := uuid.New()

	view := &render.InvoiceView{Theme: domain.ThemeShare, GrandTotal: "1600.00"}
	mockSvc.On("RenderView", mock.Anything, ownerID, invoiceID, render.Options{
		Theme: domain.ThemeShare,
	}).Return(view, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet,
		"/share/invoice?owner="+ownerID.String()+"&invoice="+invoiceID.String(), http.NoBody)

	h.View(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestShareHandler_View_MissingParams(t *testing.T) {
	h, mockSvc := newShareHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/share/invoice", http.NoBody)

	h.View(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "RenderView", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestShareHandler_View_InvoiceNotFound(t *testing.T) {
	h, mockSvc := newShareHandler()
	ownerID := uuid.New()
	invoiceID := uuid.New()

	mockSvc.On("RenderView", mock.Anything, ownerID, invoiceID, mock.Anything).
		Return(nil, domain.ErrInvoiceNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet,
		"/share/invoice?owner="+ownerID.String()+"&invoice="+invoiceID.String(), http.NoBody)

	h.View(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

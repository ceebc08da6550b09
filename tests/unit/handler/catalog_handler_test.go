package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"aravalli/internal/domain"
	"aravalli/internal/handler"
	"aravalli/mocks"
)

func TestCatalogHandler_List_Success(t *testing.T) {
	mockSvc := new(mocks.MockCatalogService)
	h := handler.NewCatalogHandler(mockSvc)

	items := []domain.CatalogItem{
		{ID: uuid.New(), Model: "Wardrobe W2", Material: "PVC foam board", HeightCm: 180, WidthCm: 90, DepthCm: 45, BaseRate: 450},
		{ID: uuid.New(), Model: "TV Unit T1", Material: "PVC laminate", HeightCm: 50, WidthCm: 150, DepthCm: 40, BaseRate: 380},
	}
	mockSvc.On("List", mock.Anything).Return(items, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/catalog", http.NoBody)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	mockSvc.AssertExpectations(t)
}

func TestCatalogHandler_List_StoreUnavailable(t *testing.T) {
	mockSvc := new(mocks.MockCatalogService)
	h := handler.NewCatalogHandler(mockSvc)

	mockSvc.On("List", mock.Anything).Return(nil, domain.NewStoreError("catalogRepo.List", assert.AnError))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/catalog", http.NoBody)

	h.List(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

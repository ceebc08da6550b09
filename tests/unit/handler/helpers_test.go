package handler_test

import (
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"aravalli/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newAuthedContext builds a test context carrying the owner identity that
// AuthMiddleware would normally inject.
func newAuthedContext(ownerID uuid.UUID) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(middleware.ContextKeyOwnerID, ownerID)
	c.Set(middleware.ContextKeyEmail, "owner@aravalli.test")
	return c, w
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func newIdentifiedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID())
	router.GET("/api/v1/contracts", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": GetRequestID(c)})
	})
	return router
}

func TestRequestIDGenerated(t *testing.T) {
	router := newIdentifiedRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/contracts", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	responseID := w.Header().Get(HeaderRequestID)
	if responseID == "" {
		t.Fatal("Expected X-Request-ID header to be set")
	}
	if _, err := uuid.Parse(responseID); err != nil {
		t.Errorf("Expected generated request ID to be a UUID, got %q", responseID)
	}
}

func TestRequestIDHonorsClientHeader(t *testing.T) {
	router := newIdentifiedRouter()

	req := httptest.NewRequest("GET", "/api/v1/contracts", nil)
	req.Header.Set(HeaderRequestID, "upload-batch-42")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get(HeaderRequestID); got != "upload-batch-42" {
		t.Errorf("Expected request ID 'upload-batch-42', got %q", got)
	}
}

func TestGetRequestIDEmpty(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if got := GetRequestID(c); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
}

package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newLoggedRouter(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	slog.SetDefault(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo})))

	router := gin.New()
	router.Use(RequestID())
	router.Use(RequestLogger())
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/api/v1/contracts/:id", func(c *gin.Context) {
		c.Set("contract_id", c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"contract_id": c.Param("id")})
	})
	router.GET("/api/v1/contracts/:id/status", func(c *gin.Context) {
		c.Set("contract_id", c.Param("id"))
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
	})
	router.GET("/boom", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	})
	return router
}

func TestRequestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	router := newLoggedRouter(&buf)

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		logLevel       string
	}{
		{"completed contract", "/api/v1/contracts/c-123", http.StatusOK, "INFO"},
		{"missing contract", "/api/v1/contracts/c-404/status", http.StatusNotFound, "WARN"},
		{"server error", "/boom", http.StatusInternalServerError, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest("GET", tt.path, nil))

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			logOutput := buf.String()
			if !strings.Contains(logOutput, "request completed") {
				t.Error("Expected 'request completed' in log")
			}
			if !strings.Contains(logOutput, tt.path) {
				t.Errorf("Expected path %q in log", tt.path)
			}
			if !strings.Contains(logOutput, tt.logLevel) {
				t.Errorf("Expected log level %q in log", tt.logLevel)
			}
		})
	}
}

func TestRequestLoggerCarriesContractID(t *testing.T) {
	var buf bytes.Buffer
	router := newLoggedRouter(&buf)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/contracts/c-777", nil))

	if !strings.Contains(buf.String(), "contract_id=c-777") {
		t.Errorf("Expected contract_id in log, got: %s", buf.String())
	}
}

func TestRequestLoggerSkipsHealth(t *testing.T) {
	var buf bytes.Buffer
	router := newLoggedRouter(&buf)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if buf.Len() != 0 {
		t.Errorf("Expected no access log for /health, got: %s", buf.String())
	}
}

func TestRequestLoggerWithQuery(t *testing.T) {
	var buf bytes.Buffer
	router := newLoggedRouter(&buf)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/contracts/c-1?page=2&status=completed", nil))

	if !strings.Contains(buf.String(), "page=2") {
		t.Errorf("Expected query parameters in log, got: %s", buf.String())
	}
}

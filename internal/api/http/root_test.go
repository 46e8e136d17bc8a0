package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	httpapi "github.com/sofili-studio/studio-backend/internal/api/http"
)

func TestIndex(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handler := httpapi.NewRootHandler("Sofili Studio API", "1.0", nil)
	router.GET("/v1/", handler.Index)

	req, err := http.NewRequest("GET", "/v1/", nil)
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v",
			status, http.StatusOK)
	}

	var response struct {
		OK      bool   `json:"ok"`
		Service string `json:"service"`
		Version string `json:"version"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Errorf("failed to unmarshal response: %v", err)
	}

	if !response.OK {
		t.Errorf("expected ok true, got %v", response.OK)
	}

	if response.Service != "Sofili Studio API" {
		t.Errorf("expected service 'Sofili Studio API', got %s", response.Service)
	}

	if response.Version != "1.0" {
		t.Errorf("expected version '1.0', got %s", response.Version)
	}
}

func TestHealthCheckWithoutDB(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handler := httpapi.NewRootHandler("test-service", "1.0.0", nil)
	handler.RegisterRoutes(router)

	req, err := http.NewRequest("GET", "/health", nil)
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v",
			status, http.StatusOK)
	}

	var response httpapi.HealthResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Errorf("failed to unmarshal response: %v", err)
	}

	if response.Status != "healthy" {
		t.Errorf("expected status 'healthy', got %s", response.Status)
	}

	if response.DB != "disabled" {
		t.Errorf("expected db 'disabled', got %s", response.DB)
	}
}

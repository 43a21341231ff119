package router

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/staybook/internal/server/http/handlers"
	"github.com/polkiloo/staybook/internal/server/http/middleware"
	testhelpers "github.com/polkiloo/staybook/internal/test"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := Setup(testhelpers.FacadeStub{}, testLogger())

	body, _ := json.Marshal(map[string]string{"name": "user", "secret": "pass"})
	req := httptest.NewRequest(http.MethodPost, "/api/users/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for register, got %d", resp.Code)
	}
	if resp.Header().Get(middleware.RequestIDHeader) == "" {
		t.Fatal("expected request id header")
	}

	routes := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/api/properties", http.StatusOK},
		{http.MethodGet, "/api/properties/1", http.StatusOK},
		{http.MethodGet, "/api/bookings", http.StatusOK},
		{http.MethodPost, "/api/bookings/1/checkout", http.StatusOK},
		{http.MethodPost, "/api/bookings/1/payments", http.StatusCreated},
		{http.MethodGet, "/api/history", http.StatusOK},
	}
	for _, r := range routes {
		req := httptest.NewRequest(r.method, r.path, nil)
		req.Header.Set("Authorization", "Bearer token")
		resp := httptest.NewRecorder()
		engine.ServeHTTP(resp, req)
		if resp.Code != r.status {
			t.Errorf("%s %s: expected status %d, got %d", r.method, r.path, r.status, resp.Code)
		}
	}
}

func TestSetupRequiresAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := Setup(testhelpers.FacadeStub{}, testLogger())

	for _, path := range []string{"/api/properties", "/api/bookings", "/api/history"} {
		resp := httptest.NewRecorder()
		engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
		if resp.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401 without token, got %d", path, resp.Code)
		}
	}
}

func TestSetupCompressesResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := Setup(testhelpers.FacadeStub{}, testLogger())

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, _ = gz.Write([]byte(`{"property_id":1,"check_in":"2024-03-01","check_out":"2024-03-03"}`))
	_ = gz.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("Authorization", "Bearer token")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	if resp.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip response, got %q", resp.Header().Get("Content-Encoding"))
	}
	reader, err := gzip.NewReader(resp.Body)
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	defer reader.Close()
	var booking map[string]any
	if err := json.NewDecoder(reader).Decode(&booking); err != nil {
		t.Fatalf("decode booking: %v", err)
	}
	if booking["check_in"] != "2024-03-01" {
		t.Fatalf("unexpected booking %v", booking)
	}
}

var _ handlers.Facade = testhelpers.FacadeStub{}

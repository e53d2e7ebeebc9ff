package systemHandler

import (
	systemService "PortfolioBackend/internal/api/system/service"
	"PortfolioBackend/internal/middleware"
	"PortfolioBackend/pkg/log"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("APP_ENV", "test")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")

	logger := log.NewLogger()
	m := middleware.New(logger)

	svc := systemService.New(logger, nil, nil)
	h := New(logger, m, svc)

	app := fiber.New()
	app.Use(m.NewRequestIDMiddleware())
	h.Start(app)

	return app
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestRoot(t *testing.T) {
	app := setupApp(t)

	resp := get(t, app, "/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var out struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Message != "Hello from the portfolio backend!" {
		t.Errorf("unexpected root message %q", out.Message)
	}
}

func TestHello(t *testing.T) {
	app := setupApp(t)

	resp := get(t, app, "/api/hello")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var out struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Message != "Hello from the backend API!" {
		t.Errorf("unexpected hello message %q", out.Message)
	}
}

func TestStatusWithoutBackingServices(t *testing.T) {
	app := setupApp(t)

	resp := get(t, app, "/test")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var out struct {
		Backend          string   `json:"backend"`
		Database         string   `json:"database"`
		DatabaseURL      string   `json:"database_url"`
		Redis            string   `json:"redis"`
		ConnectionStatus string   `json:"connection_status"`
		Tables           []string `json:"tables"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if out.Backend != "✅ Running" {
		t.Errorf("backend = %q", out.Backend)
	}
	if !strings.Contains(out.Database, "not configured") {
		t.Errorf("database = %q, want not-configured report", out.Database)
	}
	if out.DatabaseURL != "❌ Not Set" {
		t.Errorf("database_url = %q", out.DatabaseURL)
	}
	if out.Redis != "❌ Not Available" {
		t.Errorf("redis = %q", out.Redis)
	}
	if out.ConnectionStatus != "Not Connected" {
		t.Errorf("connection_status = %q", out.ConnectionStatus)
	}
	if len(out.Tables) != 0 {
		t.Errorf("expected no tables, got %v", out.Tables)
	}
}

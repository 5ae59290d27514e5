package handlers

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func TestHealthCheck(t *testing.T) {
	app := fiber.New()
	app.Get("/api/health", HealthCheck)

	status, data := doRequest(t, app, "GET", "/api/health", nil)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	var body struct {
		Status    string `json:"status"`
		Message   string `json:"message"`
		Timestamp string `json:"timestamp"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Status != "OK" || body.Message != "FitZone API is running" {
		t.Errorf("unexpected body: %s", data)
	}
	if _, err := time.Parse(time.RFC3339, body.Timestamp); err != nil {
		t.Errorf("timestamp %q is not RFC3339: %v", body.Timestamp, err)
	}
}

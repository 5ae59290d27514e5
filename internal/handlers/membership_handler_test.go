package handlers

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ianishdubey/FitZoneBack/internal/models"
)

type stubMembershipService struct {
	lastUserID int64
	lastPlan   string
	lastAmount float64
	calls      int
}

func (s *stubMembershipService) CreateMembership(_ context.Context, userID int64, planType string, amount float64) (*models.Membership, error) {
	s.calls++
	s.lastUserID = userID
	s.lastPlan = planType
	s.lastAmount = amount
	now := time.Now()
	return &models.Membership{
		ID:            1,
		UserID:        userID,
		PlanType:      planType,
		Amount:        amount,
		StartDate:     now,
		EndDate:       now.Add(30 * 24 * time.Hour),
		IsActive:      true,
		PaymentStatus: "pending",
	}, nil
}

func newMembershipApp(service *stubMembershipService) *fiber.App {
	handler := NewMembershipHandler(service)
	app := fiber.New()
	app.Use(asUser("7"))
	app.Post("/api/memberships", handler.CreateMembership)
	return app
}

func TestCreateMembership(t *testing.T) {
	service := &stubMembershipService{}
	app := newMembershipApp(service)

	status, data := doRequest(t, app, "POST", "/api/memberships", map[string]any{
		"planType": "premium",
		"amount":   49.99,
	})
	if status != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", status, data)
	}

	if service.lastUserID != 7 || service.lastPlan != "premium" || service.lastAmount != 49.99 {
		t.Errorf("unexpected service args: user=%d plan=%q amount=%v",
			service.lastUserID, service.lastPlan, service.lastAmount)
	}

	var body struct {
		Message    string            `json:"message"`
		Membership models.Membership `json:"membership"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Message != "Membership created successfully" {
		t.Errorf("unexpected message %q", body.Message)
	}
	if body.Membership.PlanType != "premium" || !body.Membership.IsActive {
		t.Errorf("unexpected membership payload: %s", data)
	}
	if got := body.Membership.EndDate.Sub(body.Membership.StartDate); got != 30*24*time.Hour {
		t.Errorf("expected a 30 day window, got %v", got)
	}
}

func TestCreateMembershipRejectsUnknownPlan(t *testing.T) {
	service := &stubMembershipService{}
	app := newMembershipApp(service)

	status, _ := doRequest(t, app, "POST", "/api/memberships", map[string]any{
		"planType": "platinum",
		"amount":   99.99,
	})
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if service.calls != 0 {
		t.Error("invalid plan must not reach the service")
	}
}

func TestCreateMembershipRejectsNegativeAmount(t *testing.T) {
	service := &stubMembershipService{}
	app := newMembershipApp(service)

	status, _ := doRequest(t, app, "POST", "/api/memberships", map[string]any{
		"planType": "basic",
		"amount":   -1,
	})
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if service.calls != 0 {
		t.Error("invalid amount must not reach the service")
	}
}

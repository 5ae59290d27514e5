package handlers

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/ianishdubey/FitZoneBack/internal/models"
	"github.com/ianishdubey/FitZoneBack/internal/repository"
)

type stubInquiryStore struct {
	lastInput *repository.CreateInquiryInput
}

func (s *stubInquiryStore) Create(_ context.Context, input repository.CreateInquiryInput) (*models.Inquiry, error) {
	s.lastInput = &input
	now := time.Now()
	return &models.Inquiry{
		ID:        1,
		Reference: input.Reference,
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Message:   input.Message,
		Type:      input.Type,
		Status:    "new",
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func newContactApp(store *stubInquiryStore) *fiber.App {
	handler := NewContactHandler(store)
	app := fiber.New()
	app.Post("/api/contact", handler.SubmitInquiry)
	return app
}

func TestSubmitInquiry(t *testing.T) {
	store := &stubInquiryStore{}
	app := newContactApp(store)

	status, data := doRequest(t, app, "POST", "/api/contact", map[string]any{
		"name":    "Jane Doe",
		"email":   "jane@x.com",
		"message": "Do you offer student discounts?",
		"type":    "membership",
	})
	if status != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", status, data)
	}

	var body struct {
		Message   string `json:"message"`
		InquiryID string `json:"inquiryId"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Message != "Inquiry submitted successfully" {
		t.Errorf("unexpected message %q", body.Message)
	}
	if _, err := uuid.Parse(body.InquiryID); err != nil {
		t.Errorf("inquiryId %q is not a UUID: %v", body.InquiryID, err)
	}

	if store.lastInput == nil {
		t.Fatal("expected inquiry to reach the store")
	}
	if store.lastInput.Type != "membership" {
		t.Errorf("expected type membership, got %q", store.lastInput.Type)
	}
}

func TestSubmitInquiryDefaultsType(t *testing.T) {
	store := &stubInquiryStore{}
	app := newContactApp(store)

	status, _ := doRequest(t, app, "POST", "/api/contact", map[string]any{
		"name":    "Jane Doe",
		"email":   "jane@x.com",
		"message": "Hello",
	})
	if status != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", status)
	}
	if store.lastInput == nil || store.lastInput.Type != "general" {
		t.Errorf("expected type to default to general, got %+v", store.lastInput)
	}
}

func TestSubmitInquiryValidation(t *testing.T) {
	cases := []struct {
		name    string
		payload map[string]any
	}{
		{"missing name", map[string]any{"email": "jane@x.com", "message": "Hi"}},
		{"missing email", map[string]any{"name": "Jane", "message": "Hi"}},
		{"bad email", map[string]any{"name": "Jane", "email": "not-an-email", "message": "Hi"}},
		{"missing message", map[string]any{"name": "Jane", "email": "jane@x.com"}},
		{"unknown type", map[string]any{"name": "Jane", "email": "jane@x.com", "message": "Hi", "type": "billing"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &stubInquiryStore{}
			app := newContactApp(store)

			status, _ := doRequest(t, app, "POST", "/api/contact", tc.payload)
			if status != fiber.StatusBadRequest {
				t.Fatalf("expected 400, got %d", status)
			}
			if store.lastInput != nil {
				t.Error("invalid payload must not reach the store")
			}
		})
	}
}

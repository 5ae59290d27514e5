package handlers

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/ianishdubey/FitZoneBack/internal/httperr"
	"github.com/ianishdubey/FitZoneBack/internal/models"
	"github.com/ianishdubey/FitZoneBack/internal/repository"
)

type inquiryStore interface {
	Create(ctx context.Context, input repository.CreateInquiryInput) (*models.Inquiry, error)
}

type ContactHandler struct {
	inquiries inquiryStore
}

func NewContactHandler(inquiries inquiryStore) *ContactHandler {
	return &ContactHandler{inquiries: inquiries}
}

type contactRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone"`
	Message string  `json:"message"`
	Type    string  `json:"type"`
}

func (h *ContactHandler) SubmitInquiry(c *fiber.Ctx) error {
	var req contactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(httperr.New("Invalid request body", httperr.CodeValidation))
	}

	if msg := validateContactRequest(req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(httperr.New(msg, httperr.CodeValidation))
	}

	inquiryType := req.Type
	if inquiryType == "" {
		inquiryType = "general"
	}

	inquiry, err := h.inquiries.Create(c.Context(), repository.CreateInquiryInput{
		Reference: uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		Type:      inquiryType,
	})
	if err != nil {
		slog.Error("inquiry creation failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(httperr.New(httperr.MsgServerError, httperr.CodeServerError))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Inquiry submitted successfully",
		"inquiryId": inquiry.Reference,
	})
}

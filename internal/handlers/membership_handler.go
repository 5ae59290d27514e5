package handlers

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/ianishdubey/FitZoneBack/internal/httperr"
	"github.com/ianishdubey/FitZoneBack/internal/models"
)

type membershipCreator interface {
	CreateMembership(ctx context.Context, userID int64, planType string, amount float64) (*models.Membership, error)
}

type MembershipHandler struct {
	memberships membershipCreator
}

func NewMembershipHandler(memberships membershipCreator) *MembershipHandler {
	return &MembershipHandler{memberships: memberships}
}

type membershipRequest struct {
	PlanType string  `json:"planType"`
	Amount   float64 `json:"amount"`
}

func (h *MembershipHandler) CreateMembership(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusForbidden).
			JSON(httperr.New(httperr.MsgInvalidToken, httperr.CodeInvalidToken))
	}

	var req membershipRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(httperr.New("Invalid request body", httperr.CodeValidation))
	}

	if msg := validateMembershipRequest(req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(httperr.New(msg, httperr.CodeValidation))
	}

	membership, err := h.memberships.CreateMembership(c.Context(), userID, req.PlanType, req.Amount)
	if err != nil {
		slog.Error("membership creation failed", "error", err, "user_id", userID)
		return c.Status(fiber.StatusInternalServerError).
			JSON(httperr.New(httperr.MsgServerError, httperr.CodeServerError))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Membership created successfully",
		"membership": membership,
	})
}

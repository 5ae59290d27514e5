package handlers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/ianishdubey/FitZoneBack/internal/httperr"
	"github.com/ianishdubey/FitZoneBack/internal/models"
	"github.com/ianishdubey/FitZoneBack/internal/repository"
)

type profileStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Update(ctx context.Context, id int64, input repository.UpdateUserInput) (*models.User, error)
}

type ProfileHandler struct {
	users profileStore
}

func NewProfileHandler(users profileStore) *ProfileHandler {
	return &ProfileHandler{users: users}
}

// updateProfileRequest is the allow-list of updatable fields. A password key
// in the payload has nowhere to land and is silently dropped; password
// changes do not go through this endpoint.
type updateProfileRequest struct {
	FirstName *string         `json:"firstName"`
	LastName  *string         `json:"lastName"`
	Phone     *string         `json:"phone"`
	Profile   *models.Profile `json:"profile"`
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusForbidden).
			JSON(httperr.New(httperr.MsgInvalidToken, httperr.CodeInvalidToken))
	}

	user, err := h.users.GetByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).
				JSON(httperr.New(httperr.MsgUserNotFound, httperr.CodeUserNotFound))
		}
		slog.Error("profile fetch failed", "error", err, "user_id", userID)
		return c.Status(fiber.StatusInternalServerError).
			JSON(httperr.New(httperr.MsgServerError, httperr.CodeServerError))
	}

	return c.JSON(user)
}

func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusForbidden).
			JSON(httperr.New(httperr.MsgInvalidToken, httperr.CodeInvalidToken))
	}

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(httperr.New("Invalid request body", httperr.CodeValidation))
	}

	if msg := validateUpdateProfileRequest(req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(httperr.New(msg, httperr.CodeValidation))
	}

	user, err := h.users.Update(c.Context(), userID, repository.UpdateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Profile:   req.Profile,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).
				JSON(httperr.New(httperr.MsgUserNotFound, httperr.CodeUserNotFound))
		}
		slog.Error("profile update failed", "error", err, "user_id", userID)
		return c.Status(fiber.StatusInternalServerError).
			JSON(httperr.New(httperr.MsgServerError, httperr.CodeServerError))
	}

	return c.JSON(fiber.Map{
		"message": "Profile updated successfully",
		"user":    user,
	})
}

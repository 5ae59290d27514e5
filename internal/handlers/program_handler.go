package handlers

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/ianishdubey/FitZoneBack/internal/httperr"
	"github.com/ianishdubey/FitZoneBack/internal/models"
)

type programStore interface {
	List(ctx context.Context) ([]models.Program, error)
}

type purchaseStore interface {
	AddPurchasedProgram(ctx context.Context, userID int64, programID string) error
	GetPurchasedPrograms(ctx context.Context, userID int64) ([]string, error)
}

type ProgramHandler struct {
	programs programStore
	users    purchaseStore
}

func NewProgramHandler(programs programStore, users purchaseStore) *ProgramHandler {
	return &ProgramHandler{programs: programs, users: users}
}

func (h *ProgramHandler) ListPrograms(c *fiber.Ctx) error {
	programs, err := h.programs.List(c.Context())
	if err != nil {
		slog.Error("programs fetch failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(httperr.New(httperr.MsgServerError, httperr.CodeServerError))
	}
	return c.JSON(programs)
}

// PurchaseProgram unlocks a catalog entry for the user. No payment is
// processed; buying the same program twice is a no-op.
func (h *ProgramHandler) PurchaseProgram(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusForbidden).
			JSON(httperr.New(httperr.MsgInvalidToken, httperr.CodeInvalidToken))
	}

	programID := strings.TrimSpace(c.Params("programId"))
	if programID == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(httperr.New("Program id is required", httperr.CodeValidation))
	}

	if err := h.users.AddPurchasedProgram(c.Context(), userID, programID); err != nil {
		slog.Error("program purchase failed", "error", err, "user_id", userID, "program_id", programID)
		return c.Status(fiber.StatusInternalServerError).
			JSON(httperr.New(httperr.MsgServerError, httperr.CodeServerError))
	}

	return c.JSON(fiber.Map{"message": "Program purchased successfully"})
}

func (h *ProgramHandler) GetUserPrograms(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusForbidden).
			JSON(httperr.New(httperr.MsgInvalidToken, httperr.CodeInvalidToken))
	}

	programs, err := h.users.GetPurchasedPrograms(c.Context(), userID)
	if err != nil {
		slog.Error("user programs fetch failed", "error", err, "user_id", userID)
		return c.Status(fiber.StatusInternalServerError).
			JSON(httperr.New(httperr.MsgServerError, httperr.CodeServerError))
	}
	if programs == nil {
		programs = []string{}
	}

	return c.JSON(fiber.Map{"purchasedPrograms": programs})
}

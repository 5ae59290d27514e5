package handlers

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ianishdubey/FitZoneBack/internal/httperr"
	"github.com/ianishdubey/FitZoneBack/internal/models"
	"github.com/ianishdubey/FitZoneBack/pkg/utils"
)

type userStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type AuthHandler struct {
	users     userStore
	jwtSecret string
}

func NewAuthHandler(users userStore, jwtSecret string) *AuthHandler {
	return &AuthHandler{users: users, jwtSecret: jwtSecret}
}

type registerRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Phone     *string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(httperr.New("Invalid request body", httperr.CodeValidation))
	}

	if msg := validateRegisterRequest(req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(httperr.New(msg, httperr.CodeValidation))
	}

	existing, err := h.users.GetByEmail(c.Context(), req.Email)
	if err == nil && existing != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(httperr.New(httperr.MsgUserExists, httperr.CodeUserExists))
	}
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		slog.Error("registration email lookup failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(httperr.New("Server error during registration", httperr.CodeServerError))
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		slog.Error("password hashing failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(httperr.New("Server error during registration", httperr.CodeServerError))
	}

	user := &models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hashed,
		Phone:        req.Phone,
	}
	if err := h.users.Create(c.Context(), user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return c.Status(fiber.StatusBadRequest).
				JSON(httperr.New(httperr.MsgUserExists, httperr.CodeUserExists))
		}
		slog.Error("user creation failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(httperr.New("Server error during registration", httperr.CodeServerError))
	}

	token, err := utils.GenerateToken(strconv.FormatInt(user.ID, 10), user.Email, h.jwtSecret)
	if err != nil {
		slog.Error("token generation failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(httperr.New("Server error during registration", httperr.CodeServerError))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"token":   token,
		"user": fiber.Map{
			"id":             user.ID,
			"firstName":      user.FirstName,
			"lastName":       user.LastName,
			"email":          user.Email,
			"membershipType": user.MembershipType,
		},
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(httperr.New("Invalid request body", httperr.CodeValidation))
	}

	user, err := h.users.GetByEmail(c.Context(), req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Same response as a wrong password: no user-existence leak.
			return c.Status(fiber.StatusBadRequest).
				JSON(httperr.New(httperr.MsgInvalidCredentials, httperr.CodeInvalidCredentials))
		}
		slog.Error("login lookup failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(httperr.New("Server error during login", httperr.CodeServerError))
	}

	if !utils.CheckPassword(req.Password, user.PasswordHash) {
		return c.Status(fiber.StatusBadRequest).
			JSON(httperr.New(httperr.MsgInvalidCredentials, httperr.CodeInvalidCredentials))
	}

	token, err := utils.GenerateToken(strconv.FormatInt(user.ID, 10), user.Email, h.jwtSecret)
	if err != nil {
		slog.Error("token generation failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(httperr.New("Server error during login", httperr.CodeServerError))
	}

	purchased := user.PurchasedPrograms
	if purchased == nil {
		purchased = []string{}
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user": fiber.Map{
			"id":                user.ID,
			"firstName":         user.FirstName,
			"lastName":          user.LastName,
			"email":             user.Email,
			"membershipType":    user.MembershipType,
			"purchasedPrograms": purchased,
		},
	})
}

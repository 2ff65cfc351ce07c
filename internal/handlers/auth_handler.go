package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/laibam4/reelico/internal/services"
	"github.com/laibam4/reelico/internal/utils"
)

type AuthHandler struct {
	svc    *services.AuthService
	logger *zap.SugaredLogger
}

func NewAuthHandler(svc *services.AuthService, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{svc: svc, logger: logger}
}

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerReq
	if err := c.BodyParser(&req); err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return utils.JSONError(c, fiber.StatusBadRequest, "Username, email and password are required")
	}
	if _, err := h.svc.Register(c.Context(), req.Username, req.Email, req.Password); err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return utils.JSONError(c, fiber.StatusConflict, "Email already in use")
		}
		return utils.JSONInternal(c, "Registration failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "User registered successfully"})
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginReq
	if err := c.BodyParser(&req); err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	token, user, err := h.svc.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return utils.JSONError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return utils.JSONInternal(c, "Login failed", err)
	}
	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":       user.ID.Hex(),
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

package handler

import (
	"simagang-backend/internal/middleware"
	"simagang-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authUsecase *usecase.AuthUsecase
}

func NewAuthHandler(authUsecase *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validateStruct(req); err != nil {
		return respondError(c, err)
	}

	token, user, err := h.authUsecase.Login(req.Email, req.Password)
	if err != nil {
		// Jangan bocorkan apakah email terdaftar
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Email atau password salah"})
	}

	return c.JSON(fiber.Map{
		"message": "Login berhasil",
		"token":   token,
		"user": fiber.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// Me mengembalikan identitas + scope profil user yang sedang login.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	role := middleware.UserRole(c)
	scope := h.authUsecase.ResolveScope(userID, role)

	return c.JSON(fiber.Map{
		"user_id":  userID,
		"role":     role,
		"guru_id":  scope.GuruID,
		"siswa_id": scope.SiswaID,
	})
}

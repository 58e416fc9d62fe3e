package handler

import (
	"simagang-backend/internal/helper"
	"simagang-backend/internal/middleware"
	"simagang-backend/internal/model"
	"simagang-backend/internal/repository"
	"simagang-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

// Manajemen user khusus admin (route sudah dijaga middleware Role).
type UserHandler struct {
	repo        repository.UserRepository
	authUsecase *usecase.AuthUsecase
}

func NewUserHandler(repo repository.UserRepository, authUsecase *usecase.AuthUsecase) *UserHandler {
	return &UserHandler{repo: repo, authUsecase: authUsecase}
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 5, 100)

	users, total, err := h.repo.List(c.Query("search"), c.Query("role"), paging.Limit(), paging.Offset())
	if err != nil {
		return respondError(c, err)
	}

	roleCounts, err := h.repo.CountByRole()
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": users,
		"meta": helper.BuildMeta(total, paging),
		"stats": fiber.Map{
			"total_users": total,
			"admin_users": roleCounts[model.RoleAdmin],
			"guru_users":  roleCounts[model.RoleGuru],
			"siswa_users": roleCounts[model.RoleSiswa],
		},
	})
}

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Role     string `json:"role" validate:"required,oneof=admin guru siswa"`
	Password string `json:"password" validate:"required,min=6"`
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validateStruct(req); err != nil {
		return respondError(c, err)
	}

	if _, err := h.repo.GetByEmail(req.Email); err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email sudah terdaftar"})
	}

	hashed, err := h.authUsecase.HashPassword(req.Password)
	if err != nil {
		return respondError(c, err)
	}

	user := model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Role:     req.Role,
	}
	if err := h.repo.Create(&user); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User berhasil ditambahkan",
		"data":    user,
	})
}

type UpdateUserRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email,max=255"`
	Role  string `json:"role" validate:"required,oneof=admin guru siswa"`
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validateStruct(req); err != nil {
		return respondError(c, err)
	}

	user, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User tidak ditemukan"})
	}

	if existing, err := h.repo.GetByEmail(req.Email); err == nil && existing.ID != user.ID {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email sudah terdaftar"})
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Role = req.Role
	if err := h.repo.Update(user); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "User berhasil diperbarui",
		"data":    user,
	})
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	// Admin tidak boleh menghapus akunnya sendiri
	if uint(id) == middleware.UserID(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Tidak dapat menghapus akun sendiri"})
	}

	if err := h.repo.Delete(uint(id)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "User berhasil dihapus"})
}

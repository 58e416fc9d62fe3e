package handler

import (
	"time"

	"simagang-backend/internal/middleware"
	"simagang-backend/internal/repository"
	"simagang-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	repo        repository.DashboardRepository
	authUsecase *usecase.AuthUsecase
}

func NewDashboardHandler(repo repository.DashboardRepository, authUsecase *usecase.AuthUsecase) *DashboardHandler {
	return &DashboardHandler{repo: repo, authUsecase: authUsecase}
}

func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	scope := h.authUsecase.ResolveScope(middleware.UserID(c), middleware.UserRole(c))

	data, err := h.repo.GetDashboardData(scope, time.Now().Format("2006-01-02"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data dashboard"})
	}

	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil statistik",
		"data":    data,
	})
}

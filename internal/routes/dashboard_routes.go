package routes

import (
	"simagang-backend/internal/handler"
	"simagang-backend/internal/middleware"
	"simagang-backend/internal/repository"
	"simagang-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB) {
	dashboardRepo := repository.NewDashboardRepository(db)
	userRepo := repository.NewUserRepository(db)
	guruRepo := repository.NewGuruRepository(db)
	siswaRepo := repository.NewSiswaRepository(db)
	authUsecase := usecase.NewAuthUsecase(userRepo, guruRepo, siswaRepo)
	hdl := handler.NewDashboardHandler(dashboardRepo, authUsecase)

	api := app.Group("/api/dashboard", middleware.Auth)

	api.Get("/", hdl.GetStats)
}

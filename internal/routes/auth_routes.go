package routes

import (
	"simagang-backend/internal/handler"
	"simagang-backend/internal/middleware"
	"simagang-backend/internal/repository"
	"simagang-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	userRepo := repository.NewUserRepository(db)
	guruRepo := repository.NewGuruRepository(db)
	siswaRepo := repository.NewSiswaRepository(db)
	authUsecase := usecase.NewAuthUsecase(userRepo, guruRepo, siswaRepo)
	hdl := handler.NewAuthHandler(authUsecase)

	api := app.Group("/api/auth")

	api.Post("/login", hdl.Login)
	api.Get("/me", middleware.Auth, hdl.Me)
}
